package sidebar

import "github.com/tidwall/gjson"

// field returns the value of key in obj. When the key repeats, the last
// occurrence wins. Non-objects have no fields.
func field(obj gjson.Result, key string) gjson.Result {
	var out gjson.Result
	if !obj.IsObject() {
		return out
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out = v
		}
		return true
	})
	return out
}

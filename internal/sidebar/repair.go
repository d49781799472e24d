package sidebar

import "strings"

// repairs are applied in order, each across the whole text.
var repairs = [][2]string{
	{`file:\/\/\/`, `file:///`},
	{`https:\/\/`, `https://`},
	{`http:\/\/`, `http://`},
	{`C:\`, `C:/`},
	{`D:\`, `D:/`},
}

// Repair rewrites the escape sequences known to break the export's JSON.
// It is not a general purpose JSON fixer.
func Repair(text string) string {
	for _, r := range repairs {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}

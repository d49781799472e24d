package ui

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/dastanaron/arc-bookmarks/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	ModeNormal = 1
	ModeSearch = 2
)

// App is a read-only browser over a converted bookmark tree
type App struct {
	app    *tview.Application
	tree   *tview.TreeView
	detail *tview.TextView
	search *tview.InputField
	status *tview.TextView
	mode   uint8
	roots  []models.Node
	stats  models.Stats
}

// NewApp creates a new application instance
func NewApp(roots []models.Node, stats models.Stats) *App {
	return &App{
		app:    tview.NewApplication(),
		tree:   tview.NewTreeView(),
		detail: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		search: tview.NewInputField().SetLabel("Search: "),
		status: tview.NewTextView().SetDynamicColors(true),
		mode:   ModeNormal,
		roots:  roots,
		stats:  stats,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.tree.SetBorder(true).SetTitle("Spaces")
	a.detail.SetBorder(true).SetTitle("Details")

	cols := tview.NewFlex().
		AddItem(a.tree, 0, 2, true).
		AddItem(a.detail, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.tree.SetChangedFunc(a.onSelect)
	a.tree.SetSelectedFunc(a.onEnter)
	a.search.SetChangedFunc(a.onSearchChange)
	a.search.SetDoneFunc(a.onSearchDone)

	a.fillTree("")
	a.updateStatus()

	a.app.SetRoot(main, true)
	a.app.SetInputCapture(a.globalInput)
	a.app.SetFocus(a.tree)
	return a.app.Run()
}

func (a *App) updateStatus() {
	a.status.SetText(fmt.Sprintf(
		"[::b]/[::-] search  [::b]Enter[::-] open/expand  [::b]q[::-] quit   [::b]%d[::-] spaces, %d folders, %d bookmarks",
		len(a.roots), a.stats.FoldersFound, a.stats.BookmarksFound))
}

func (a *App) fillTree(query string) {
	root := BuildTree(FilterNodes(a.roots, query), query != "")
	a.tree.SetRoot(root).SetCurrentNode(root)
	a.onSelect(root)
}

func (a *App) onSelect(node *tview.TreeNode) {
	n, ok := node.GetReference().(models.Node)
	if !ok {
		a.detail.SetText("")
		return
	}
	a.detail.SetText(Details(n))
}

func (a *App) onEnter(node *tview.TreeNode) {
	n, ok := node.GetReference().(models.Node)
	if !ok {
		return
	}
	if n.IsFolder() {
		node.SetExpanded(!node.IsExpanded())
		return
	}
	if n.URL != "" {
		openURL(n.URL)
	}
}

func (a *App) onSearchChange(text string) {
	a.fillTree(text)
}

func (a *App) onSearchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		a.setMode(ModeNormal)
	case tcell.KeyEscape:
		a.search.SetText("")
		a.fillTree("")
		a.setMode(ModeNormal)
	}
}

func (a *App) setMode(m uint8) {
	a.mode = m
	switch m {
	case ModeSearch:
		a.app.SetFocus(a.search)
	case ModeNormal:
		a.app.SetFocus(a.tree)
	}
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.mode != ModeNormal || event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case '/':
		a.setMode(ModeSearch)
		return nil
	}
	return event
}

func openURL(url string) {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}
	args = append(args, url)
	_ = exec.Command(cmd, args...).Start()
}

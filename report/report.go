// Package report prints saved documents and errors to the terminal
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/timeutil"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/store"
)

const noTasksMsg = "No open tasks"

// Options controls how a document is printed.
type Options struct {
	// Name is the file the document was read from
	Name string
	// Sort lists tasks in natural order instead of insertion order
	Sort bool
}

// Document prints a summary of doc followed by a table of its open tasks.
func Document(w io.Writer, doc *store.Document, opts Options) error {
	summary := [][2]string{
		{"Current task", timeutil.HMS(doc.CurTask.Value())},
		{"Last task", timeutil.HMS(doc.PrevTask.Value())},
		{"Break", timeutil.HMS(doc.BreakTime.Value())},
		{"Completed", strconv.FormatUint(doc.Completed, 10)},
		{"Removed", strconv.FormatUint(doc.Removed, 10)},
	}

	if opts.Name != "" {
		fmt.Fprintln(w, ui.Highlight(opts.Name))
	}

	for _, row := range summary {
		fmt.Fprintf(w, "%-14s%s\n", row[0], ui.Cyan(row[1]))
	}

	fmt.Fprintln(w)

	if len(doc.Tasks) == 0 {
		fmt.Fprintln(w, ui.Yellow(noTasksMsg))
		return nil
	}

	tasks := append([]string(nil), doc.Tasks...)
	if opts.Sort {
		sort.Sort(natural.StringSlice(tasks))
	}

	data := make([][]string, 0, len(tasks)+1)
	data = append(data, []string{"#", "TASK"})

	for i, task := range tasks {
		data = append(data, []string{strconv.Itoa(i + 1), task})
	}

	return ui.PrintTable(data, w)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}

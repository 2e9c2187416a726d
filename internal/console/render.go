package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"peopleRegistry/internal/viewmodel"
)

const (
	title         = "User registry"
	labelAdd      = "+ Add"
	labelUpdate   = "✓ Update"
	labelCancel   = "✕ Cancel"
	emptyRegistry = "No users registered"
	emptyResults  = "No results found"
)

// Render writes the screen for s to w.
func Render(w io.Writer, s viewmodel.State) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	fmt.Fprintf(w, "Name:  %s\n", s.Name)
	fmt.Fprintf(w, "Email: %s\n", s.Email)
	if s.Editing {
		fmt.Fprintf(w, "[save] %s  [cancel] %s  (editing #%d)\n", labelUpdate, labelCancel, s.EditingID)
	} else {
		fmt.Fprintf(w, "[save] %s\n", labelAdd)
	}
	fmt.Fprintln(w)

	if s.Filter != "" {
		fmt.Fprintf(w, "Search: %s\n", s.Filter)
		fmt.Fprintf(w, "Results: %d\n", len(s.Visible))
	} else {
		fmt.Fprintf(w, "Registered users (%d)\n", len(s.Users))
	}

	if len(s.Visible) == 0 {
		if len(s.Users) == 0 {
			fmt.Fprintf(w, "  %s\n", emptyRegistry)
		} else {
			fmt.Fprintf(w, "  %s\n", emptyResults)
		}
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, u := range s.Visible {
		fmt.Fprintf(tw, "  #%d\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	_ = tw.Flush()
}

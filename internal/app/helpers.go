package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blackwell-systems/libdash/internal/dashboard"
	"github.com/blackwell-systems/libdash/internal/entity"
)

// parseID parses a positive record id from a command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// runList renders one entity list. With full set, the long-text fields
// hidden behind the "view" marker are printed after the table.
func runList(kind entity.Kind, full bool) error {
	src := ctrl.Source(kind)
	rows, err := src.Fetch()
	if err != nil {
		return err
	}
	header("%s", kind)
	dashboard.RenderTable(os.Stdout, src.Descriptor.Columns, rows)
	if full {
		for _, r := range rows {
			if r.Detail == "" {
				continue
			}
			fmt.Printf("\n#%d\n%s\n", r.ID, r.Detail)
		}
	}
	return nil
}

// optString marks a string field for update: --clear-* wins, then a
// changed flag sets the value, otherwise the field is left untouched.
func optString(changed bool, value string, clear bool) entity.Opt[string] {
	if clear {
		return entity.Null[string]()
	}
	if changed {
		return entity.Set(value)
	}
	return entity.Opt[string]{}
}

func optInt64(changed bool, value int64, clear bool) entity.Opt[int64] {
	if clear {
		return entity.Null[int64]()
	}
	if changed {
		return entity.Set(value)
	}
	return entity.Opt[int64]{}
}

func optInt(changed bool, value int) entity.Opt[int] {
	if changed {
		return entity.Set(value)
	}
	return entity.Opt[int]{}
}

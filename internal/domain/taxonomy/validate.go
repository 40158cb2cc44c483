package taxonomy

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the structural invariants of the static table and returns
// every violation joined into one error, or nil.
func Validate() error {
	return validateTable(categories, categoryOrder)
}

func validateTable(table map[string]Category, order []string) error {
	var errs []error

	if len(order) != len(table) {
		errs = append(errs, fmt.Errorf("category order lists %d categories, table has %d", len(order), len(table)))
	}
	for _, name := range order {
		if _, ok := table[name]; !ok {
			errs = append(errs, fmt.Errorf("category %q is ordered but not defined", name))
		}
	}

	for name, c := range table {
		if len(c.ContentTypes) == 0 {
			errs = append(errs, fmt.Errorf("%s: no content types", name))
		}
		if len(c.Provinces) > 0 && len(c.ProvincesFor) > 0 {
			errs = append(errs, fmt.Errorf("%s: defines both provinces and provincesFor", name))
		}
		for class, provs := range c.ProvincesFor {
			if !slices.Contains(c.Classes, class) {
				errs = append(errs, fmt.Errorf("%s: provincesFor class %q is not a class of the category", name, class))
			}
			if len(provs) == 0 {
				errs = append(errs, fmt.Errorf("%s: provincesFor class %q has no provinces", name, class))
			}
		}
		if dup := firstDuplicate(c.Classes); dup != "" {
			errs = append(errs, fmt.Errorf("%s: class %q listed twice", name, dup))
		}
		if dup := firstDuplicate(c.Provinces); dup != "" {
			errs = append(errs, fmt.Errorf("%s: province %q listed twice", name, dup))
		}
	}

	return errors.Join(errs...)
}

func firstDuplicate(s []string) string {
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			return v
		}
		seen[v] = struct{}{}
	}
	return ""
}

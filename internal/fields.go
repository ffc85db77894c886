package internal

import "sort"

// UpdatedFieldNames lists the column names of a whitelist-update map in
// stable order for audit context notes, skipping the bookkeeping timestamp.
func UpdatedFieldNames(fields map[string]interface{}) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "updated_at" || name == "resolved_at" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

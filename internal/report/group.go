package report

import (
	"github.com/JonMunkholm/timesheet/internal/core"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// departments groups records by department. Iteration follows the order in
// which each department first appears, and records keep their input order.
func departments(records []core.Record) *orderedmap.OrderedMap[string, []core.Record] {
	groups := orderedmap.New[string, []core.Record]()
	for _, r := range records {
		list, _ := groups.Get(r.Department())
		groups.Set(r.Department(), append(list, r))
	}
	return groups
}

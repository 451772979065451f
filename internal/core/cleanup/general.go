package cleanup

import "cleanup-estimator/internal/core/equipment"

// generalTask 與設備無關的收尾工作
type generalTask struct {
	name    string
	seconds int
	reason  string
	applies func([]equipment.Instance) bool
}

// messyUsage 會弄髒地板的使用型態
var messyUsage = []string{"flour_batter", "spice_grinding", "dough_work"}

var generalTaskList = []generalTask{
	{"Counter wiping", 30, "Food preparation creates counter mess", always},
	{"Stovetop cleaning", 45, "Cooking on stovetop creates spills and splatters", usesCookware},
	{"Sink cleanup", 25, "Washing dishes creates sink mess", always},
	{"Floor sweeping", 60, "Flour/spice work creates floor mess", hasMessyUsage},
}

func always([]equipment.Instance) bool { return true }

func usesCookware(instances []equipment.Instance) bool {
	for _, inst := range instances {
		if def, ok := equipment.Lookup(inst.Type); ok && def.Category == equipment.CategoryCookware {
			return true
		}
	}
	return false
}

func hasMessyUsage(instances []equipment.Instance) bool {
	for _, inst := range instances {
		for _, p := range messyUsage {
			if inst.HasUsagePattern(p) {
				return true
			}
		}
	}
	return false
}

// generalTasks 產生一般清潔項目與其總秒數
func generalTasks(instances []equipment.Instance) ([]BreakdownItem, int) {
	var items []BreakdownItem
	total := 0
	for _, task := range generalTaskList {
		if !task.applies(instances) {
			continue
		}
		items = append(items, BreakdownItem{
			Item:       task.name,
			Quantity:   1,
			BaseTime:   task.seconds,
			Modifiers:  []ModifierEntry{},
			Subtotal:   task.seconds,
			Reasoning:  []string{task.reason},
			Confidence: 1.0,
			Category:   string(equipment.CategoryGeneral),
		})
		total += task.seconds
	}
	return items, total
}

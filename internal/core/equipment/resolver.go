package equipment

// panSpecificity 鍋具的明確程度，材質型鍋具優先於通稱
var panSpecificity = map[string]int{
	"cast_iron_pan":       3,
	"stainless_steel_pan": 3,
	"nonstick_pan":        3,
	"frying_pan":          1,
	"skillet":             1,
}

// Resolve 合併同類型實例並移除被更明確鍋具取代的通稱鍋具
//
// 信心較高者取代既有實例；信心相同時數量取大、理由聯集。
// 輸出順序為類型首次出現的順序。
func Resolve(instances []Instance) []Instance {
	var order []string
	resolved := make(map[string]*Instance)

	for _, inst := range instances {
		current, ok := resolved[inst.Type]
		switch {
		case !ok:
			c := inst.clone()
			resolved[inst.Type] = &c
			order = append(order, inst.Type)
		case inst.Confidence > current.Confidence:
			c := inst.clone()
			resolved[inst.Type] = &c
		case inst.Confidence == current.Confidence:
			current.Quantity = max(current.Quantity, inst.Quantity)
			current.Reasoning = appendUnique(current.Reasoning, inst.Reasoning...)
		}
	}

	var pans []string
	for _, t := range order {
		if _, ok := panSpecificity[t]; ok {
			pans = append(pans, t)
		}
	}
	if len(pans) > 1 {
		best := pans[0]
		for _, p := range pans[1:] {
			if panSpecificity[p] > panSpecificity[best] {
				best = p
			}
		}
		for _, p := range pans {
			if p != best && panSpecificity[p] < panSpecificity[best] {
				delete(resolved, p)
			}
		}
	}

	out := make([]Instance, 0, len(resolved))
	for _, t := range order {
		if inst, ok := resolved[t]; ok {
			out = append(out, *inst)
		}
	}
	return out
}

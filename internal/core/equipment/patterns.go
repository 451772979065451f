package equipment

// PatternEntry 一個設備識別碼與其偵測詞彙
type PatternEntry struct {
	Type  string
	Terms []string
}

// 偵測詞彙表皆以 slice 保存，掃描順序固定，輸出結果可重現

// DirectMentions 明確提及設備名稱的詞彙
var DirectMentions = []PatternEntry{
	{"frying_pan", []string{"frying pan", "skillet", "pan", "non-stick pan", "nonstick pan"}},
	{"saute_pan", []string{"sauté pan", "saute pan", "sautéing pan"}},
	{"cast_iron_pan", []string{"cast iron", "cast-iron pan", "cast iron skillet", "iron skillet"}},
	{"wok", []string{"wok", "stir-fry pan", "asian pan"}},
	{"grill_pan", []string{"grill pan", "grilling pan", "ridged pan"}},
	{"griddle", []string{"griddle", "flat griddle", "electric griddle"}},
	{"saucepan", []string{"saucepan", "sauce pan", "small pot", "medium pot"}},
	{"stockpot", []string{"stockpot", "stock pot", "large pot", "soup pot"}},
	{"dutch_oven", []string{"dutch oven", "dutch-oven", "heavy pot", "enamel pot"}},
	{"pressure_cooker", []string{"pressure cooker", "instant pot", "pressure pot"}},
	{"slow_cooker", []string{"slow cooker", "crock pot", "crockpot"}},
	{"double_boiler", []string{"double boiler", "bain marie", "water bath"}},
	{"baking_sheet", []string{"baking sheet", "cookie sheet", "sheet pan", "rimmed baking sheet"}},
	{"roasting_pan", []string{"roasting pan", "roaster", "roasting dish"}},
	{"cake_pan", []string{"cake pan", "round pan", "9-inch pan", "8-inch pan"}},
	{"loaf_pan", []string{"loaf pan", "bread pan", "9x5 pan"}},
	{"muffin_tin", []string{"muffin tin", "muffin pan", "cupcake pan", "12-cup tin"}},
	{"pie_pan", []string{"pie pan", "pie plate", "pie dish", "9-inch pie"}},
	{"tart_pan", []string{"tart pan", "tart shell", "removable bottom"}},
	{"bundt_pan", []string{"bundt pan", "tube pan", "fluted pan"}},
	{"springform_pan", []string{"springform", "springform pan", "removable sides"}},
	{"casserole_dish", []string{"casserole dish", "baking dish", "9x13 pan", "glass dish"}},
	{"ramekins", []string{"ramekin", "ramekins", "small dishes", "individual dishes"}},
	{"chef_knife", []string{"chef knife", "chefs knife", "chef's knife", "8-inch knife", "10-inch knife"}},
	{"paring_knife", []string{"paring knife", "small knife", "peeling knife"}},
	{"bread_knife", []string{"bread knife", "serrated knife", "slicing knife"}},
	{"cleaver", []string{"cleaver", "meat cleaver", "chinese cleaver", "heavy knife"}},
	{"kitchen_shears", []string{"kitchen shears", "kitchen scissors", "cooking scissors"}},
	{"cutting_board", []string{"cutting board", "chopping board", "prep board"}},
	{"box_grater", []string{"grater", "box grater", "cheese grater", "4-sided grater"}},
	{"microplane", []string{"microplane", "zester", "fine grater", "citrus zester"}},
	{"mandoline", []string{"mandoline", "mandolin", "vegetable slicer"}},
	{"vegetable_peeler", []string{"peeler", "vegetable peeler", "potato peeler"}},
	{"measuring_cups", []string{"measuring cups", "dry measuring cups", "liquid measuring"}},
	{"measuring_spoons", []string{"measuring spoons", "teaspoon", "tablespoon"}},
	{"kitchen_scale", []string{"kitchen scale", "food scale", "digital scale"}},
	{"mixing_bowl", []string{"mixing bowl", "bowl", "large bowl", "medium bowl", "small bowl"}},
	{"whisk", []string{"whisk", "wire whisk", "balloon whisk"}},
	{"wooden_spoon", []string{"wooden spoon", "wood spoon", "cooking spoon"}},
	{"silicone_spatula", []string{"spatula", "rubber spatula", "silicone spatula", "scraper"}},
	{"tongs", []string{"tongs", "kitchen tongs", "serving tongs"}},
	{"ladle", []string{"ladle", "soup ladle", "serving ladle"}},
	{"colander", []string{"colander", "pasta strainer", "vegetable strainer"}},
	{"fine_mesh_strainer", []string{"strainer", "fine strainer", "mesh strainer", "sieve"}},
	{"salad_spinner", []string{"salad spinner", "lettuce spinner", "greens spinner"}},
	{"food_processor", []string{"food processor", "cuisinart", "processor"}},
	{"blender", []string{"blender", "vitamix", "blendtec", "smoothie maker"}},
	{"immersion_blender", []string{"immersion blender", "stick blender", "hand blender"}},
	{"stand_mixer", []string{"stand mixer", "kitchenaid", "mixer", "electric mixer"}},
	{"hand_mixer", []string{"hand mixer", "electric beaters", "handheld mixer"}},
	{"rice_cooker", []string{"rice cooker", "rice maker", "electric rice cooker"}},
	{"mortar_pestle", []string{"mortar and pestle", "mortar & pestle", "pestle", "molcajete"}},
	{"bamboo_steamer", []string{"bamboo steamer", "steamer basket", "steaming basket"}},
	{"wok_spatula", []string{"wok spatula", "wok spoon", "chinese spatula"}},
	{"chopsticks", []string{"chopsticks", "cooking chopsticks", "bamboo sticks"}},
	{"sushi_mat", []string{"sushi mat", "bamboo mat", "rolling mat"}},
	{"garlic_press", []string{"garlic press", "garlic crusher"}},
	{"citrus_juicer", []string{"citrus juicer", "lemon juicer", "lime juicer"}},
	{"can_opener", []string{"can opener", "tin opener"}},
	{"rolling_pin", []string{"rolling pin", "pastry roller"}},
	{"pastry_brush", []string{"pastry brush", "basting brush", "silicone brush"}},
	{"pizza_cutter", []string{"pizza cutter", "pizza wheel"}},
	{"meat_mallet", []string{"meat mallet", "meat tenderizer", "meat hammer"}},
	{"ice_cream_scoop", []string{"ice cream scoop", "scoop", "cookie scoop"}},
}

// TechniqueMappings 烹飪動詞對應的設備
var TechniqueMappings = []PatternEntry{
	{"frying_pan", []string{
		"sauté", "sautéed", "sautéing", "fry", "fried", "frying", "pan-fry", "pan fry", "brown",
		"browned", "browning", "sear", "seared", "searing", "caramelize", "scramble", "scrambled",
		"crisp up", "render fat",
	}},
	{"wok", []string{"stir-fry", "stir fry", "stir-fried", "toss", "char", "wok hei", "high heat cooking"}},
	{"grill_pan", []string{"grill", "grilled", "grilling", "char marks", "grill marks"}},
	{"saucepan", []string{
		"simmer", "simmered", "simmering", "reduce", "reducing", "boil", "boiled", "boiling",
	}},
	{"stockpot", []string{"blanch", "blanched", "blanching", "parboil", "cook pasta", "boil water"}},
	{"pressure_cooker", []string{"pressure cook", "pressure cooked", "quick cook", "steam under pressure"}},
	{"slow_cooker", []string{"slow cook", "slow cooked", "cook on low", "cook on high", "set and forget"}},
	{"baking_sheet", []string{"bake", "baked", "baking", "roast", "roasted", "roasting", "sheet pan"}},
	{"cake_pan", []string{"bake a cake", "layer cake", "round cake"}},
	{"muffin_tin", []string{"bake muffins", "bake cupcakes", "portion batter"}},
	{"casserole_dish", []string{"casserole", "baked dish", "covered dish"}},
	{"chef_knife", []string{
		"chop", "chopped", "chopping", "dice", "diced", "dicing", "mince", "minced", "mincing",
		"slice", "sliced", "slicing", "julienne",
	}},
	{"cleaver", []string{"hack", "hacked", "hacking", "split", "crush garlic", "smash"}},
	{"paring_knife", []string{"peel", "peeled", "peeling", "trim", "trimmed", "core", "cored"}},
	{"box_grater", []string{"grate", "grated", "grating", "shred", "shredded", "shredding"}},
	{"microplane", []string{"zest", "zested", "zesting", "finely grate", "grate fine"}},
	{"mortar_pestle", []string{
		"grind", "ground", "grinding", "pound", "pounded", "pounding", "crush", "paste",
	}},
	{"food_processor", []string{"process", "processed", "processing", "pulse", "pulsed", "blend coarsely"}},
	{"whisk", []string{"whisk", "whisked", "whisking", "whip", "whipped", "whipping", "beat", "beaten"}},
	{"stand_mixer", []string{"mix", "mixed", "mixing", "cream butter", "knead dough", "beat until fluffy"}},
	{"colander", []string{"drain", "drained", "draining", "strain pasta", "rinse"}},
	{"fine_mesh_strainer", []string{"strain", "strained", "straining", "sift", "sifted", "sifting"}},
	{"bamboo_steamer", []string{"steam", "steamed", "steaming", "steam dumplings", "steam buns"}},
	{"wok_spatula", []string{"toss ingredients", "stir constantly", "flip in wok"}},
}

// IngredientPatterns 食材暗示需要的工具
var IngredientPatterns = []PatternEntry{
	{"chef_knife", []string{
		"onions", "garlic", "shallots", "vegetables", "herbs", "meat", "chicken", "beef", "pork",
	}},
	{"paring_knife", []string{"tomatoes", "strawberries", "apples", "potatoes", "citrus fruits"}},
	{"cutting_board", []string{"any chopped ingredient", "diced", "sliced", "minced"}},
	{"box_grater", []string{"cheese", "carrots", "zucchini", "potatoes", "cabbage"}},
	{"microplane", []string{"lemon zest", "lime zest", "orange zest", "nutmeg", "ginger", "garlic"}},
	{"vegetable_peeler", []string{"carrots", "potatoes", "asparagus", "cucumbers", "apples"}},
	{"mixing_bowl", []string{"batter", "dough", "marinade", "dressing", "salad"}},
	{"whisk", []string{"eggs", "cream", "vinaigrette", "batter", "sauce"}},
	{"stand_mixer", []string{"cake batter", "cookie dough", "bread dough", "frosting", "whipped cream"}},
	{"frying_pan", []string{"oil", "butter", "cooking spray"}},
	{"wok", []string{"high heat oil", "peanut oil", "vegetable oil"}},
	{"baking_sheet", []string{"parchment paper", "cooking spray", "oil"}},
	{"food_processor", []string{"nuts", "breadcrumbs", "pesto", "hummus", "nut butter"}},
	{"blender", []string{"smoothies", "soups", "sauces", "purees"}},
	{"mortar_pestle", []string{"spices", "curry paste", "pesto", "guacamole", "garlic paste"}},
}

// CulturalIndicators 料理類型暗示的傳統器具
var CulturalIndicators = []PatternEntry{
	{"wok", []string{"chinese", "thai", "vietnamese", "asian", "stir-fry", "pad thai", "fried rice"}},
	{"mortar_pestle", []string{"thai", "mexican", "indian", "curry", "paste", "guacamole", "salsa"}},
	{"bamboo_steamer", []string{"dim sum", "dumplings", "bao", "chinese", "steamed fish"}},
	{"tagine", []string{"moroccan", "north african", "slow cooked", "tagine"}},
	{"molcajete", []string{"mexican", "salsa", "guacamole", "spice grinding"}},
	{"comal", []string{"tortillas", "mexican", "flatbread", "quesadillas"}},
	{"pasta_pot", []string{"italian", "pasta", "spaghetti", "linguine", "penne"}},
	{"rice_cooker", []string{"asian", "japanese", "rice dishes", "steamed rice"}},
	{"dutch_oven", []string{"french", "braising", "coq au vin", "beef bourguignon"}},
	{"cast_iron_pan", []string{"southern", "cornbread", "skillet dishes", "american"}},
}

// 數量線索
var (
	SizeDescriptors   = []string{"large", "medium", "small", "mini", "jumbo", "8-inch", "9-inch", "10-inch"}
	SeparatingWords   = []string{"another", "second", "third", "different", "separate", "additional", "extra"}
	ConcurrentCooking = []string{"meanwhile", "at the same time", "while", "simultaneously", "in parallel"}
)

// ComplexityModifiers 增加清潔難度的烹飪行為
var ComplexityModifiers = []PatternEntry{
	{"sticky_sauce", []string{
		"caramelize", "caramelized", "reduce until thick", "sticky", "glaze", "glazed",
		"brown sugar", "honey", "maple syrup", "molasses", "corn syrup",
	}},
	{"oil_heavy", []string{
		"deep fry", "deep-fry", "deep fried", "lots of oil", "oil for frying", "render fat",
		"crispy skin", "golden brown", "oil until hot",
	}},
	{"burnt_potential", []string{"high heat", "sear", "char", "blackened", "crispy", "caramelize", "fond"}},
	{"dairy_burning", []string{"cream sauce", "cheese sauce", "milk", "cream", "butter sauce", "bechamel"}},
	{"tomato_staining", []string{
		"tomato sauce", "marinara", "tomato paste", "crushed tomatoes", "tomato puree",
	}},
	{"raw_meat", []string{"raw chicken", "raw beef", "raw pork", "raw fish", "ground meat", "handle raw"}},
	{"flour_batter", []string{"batter", "breading", "flour coating", "dredge in flour", "dusty"}},
	{"egg_coating", []string{"egg wash", "beaten eggs", "scrambled", "frittata", "quiche"}},
	{"spice_grinding", []string{"grind spices", "whole spices", "toast spices", "spice paste"}},
	{"acidic_foods", []string{"vinegar", "citrus", "wine reduction", "tomatoes", "pickled"}},
	{"sugar_work", []string{"candy", "caramel", "sugar syrup", "melted sugar", "praline"}},
	{"chocolate_melting", []string{"melted chocolate", "chocolate sauce", "tempering chocolate"}},
	{"dough_work", []string{"knead", "bread dough", "pizza dough", "sticky dough", "flour everywhere"}},
	{"fermentation", []string{"sourdough", "kimchi", "fermented", "cultured", "pickled"}},
	{"marinating", []string{"marinate", "marinade", "overnight", "wine marinade"}},
}

var modifierDescriptions = map[string]string{
	"sticky_sauce":      "Sticky or caramelized substances that require extra scrubbing",
	"oil_heavy":         "Heavy oil usage that creates greasy residue",
	"burnt_potential":   "High heat cooking that may create burnt-on food",
	"dairy_burning":     "Dairy products that can burn and stick to surfaces",
	"tomato_staining":   "Tomato-based ingredients that can stain surfaces",
	"raw_meat":          "Raw meat handling requiring sanitization",
	"flour_batter":      "Flour or batter that can create dusty, sticky messes",
	"egg_coating":       "Egg-based mixtures that can be difficult to clean",
	"spice_grinding":    "Spice residue that can stain and be hard to remove",
	"acidic_foods":      "Acidic ingredients that may require special cleaning",
	"sugar_work":        "Sugar-based cooking that creates very sticky residues",
	"chocolate_melting": "Melted chocolate that can be difficult to clean",
	"dough_work":        "Dough preparation that can leave flour residue everywhere",
	"fermentation":      "Fermentation processes that create additional cleanup",
	"marinating":        "Marinating that uses containers and creates spills",
}

const defaultModifierDescription = "Additional cleaning complexity"

// ModifierDescription 複雜度修正的說明文字
func ModifierDescription(modifierType string) string {
	if d, ok := modifierDescriptions[modifierType]; ok {
		return d
	}
	return defaultModifierDescription
}

// PatternTypes 詞彙表中引用的所有設備識別碼（去重，依首次出現順序）
func PatternTypes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]PatternEntry{DirectMentions, TechniqueMappings, IngredientPatterns, CulturalIndicators} {
		for _, entry := range group {
			if !seen[entry.Type] {
				seen[entry.Type] = true
				out = append(out, entry.Type)
			}
		}
	}
	return out
}

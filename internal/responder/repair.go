package responder

import "strings"

// repairTopic is a specific-repair answer. The detailed text is used when the
// customer asks how the work is done.
type repairTopic struct {
	name     string
	match    func(string) bool
	short    string
	detailed string
}

var asksProcess = words("how", "process", "steps", "procedure", "what happens", "walk me through", "explain")

func wantsProcess(q string) bool {
	return asksProcess(q) && !strings.Contains(q, "how much")
}

// Order matters: "bumper with a dent" is a bumper question.
var repairTopics = []repairTopic{
	{
		name:  "bumper",
		match: words("bumper", "bumpers", "bumper cover"),
		short: "We repair and replace bumpers every day, from scuffs and cracks to full bumper cover replacement, " +
			"all color-matched to your factory paint.",
		detailed: "Here's how our bumper repair process works:\n\n" +
			"1. Inspection: we check the cover, absorber and brackets behind it for hidden damage.\n" +
			"2. Repair or replace: cracks and tears in plastic covers are plastic-welded and reinforced; badly damaged covers are replaced.\n" +
			"3. Refinishing: we sand, prime and seal the repair, then mix paint to your factory color code.\n" +
			"4. Blending and clear coat: color is blended into adjacent panels so the repair is invisible.\n" +
			"5. Final check: sensors, parking aids and trim are reinstalled and tested.\n\n" +
			"Most bumper repairs take 1-3 days.",
	},
	{
		name:  "dent",
		match: words("dent", "dents", "dented", "ding", "dings"),
		short: "We fix dents of every size. Many small dents and dings can be removed with paintless dent repair, " +
			"often in a single day.",
		detailed: "Here's how we handle dents:\n\n" +
			"1. Assessment: we check the paint. If it's intact, paintless dent repair (PDR) is usually possible.\n" +
			"2. PDR: specialized tools massage the metal back into shape from behind the panel, keeping your factory finish.\n" +
			"3. Conventional repair: larger or creased dents are pulled, filled, primed and refinished.\n" +
			"4. Quality check under inspection lighting to make sure the panel is straight.\n\n" +
			"Small dents are often done same day; larger repairs take 2-4 days.",
	},
	{
		name:  "scratch",
		match: words("scratch", "scratches", "scratched", "scuff", "scuffs", "keyed"),
		short: "Light scratches can often be polished out, while deeper scratches that reach the primer need " +
			"touch-up or panel refinishing. We'll tell you which you need.",
		detailed: "Here's our scratch repair process:\n\n" +
			"1. We measure scratch depth: clear coat, base coat or down to primer/metal.\n" +
			"2. Clear coat scratches are wet-sanded and machine-polished.\n" +
			"3. Deeper scratches are filled, primed and refinished with color-matched paint.\n" +
			"4. The area is blended and clear coated so the repair disappears.\n\n" +
			"Most scratch repairs take 1-2 days.",
	},
	{
		name:  "paint",
		match: words("paint", "painting", "repaint", "paint job", "clear coat", "peeling"),
		short: "Our paint shop uses computerized color matching and a downdraft booth for a factory-quality finish.",
		detailed: "Here's how our paint process works:\n\n" +
			"1. Color match: we read your paint code and verify it with a spectrophotometer.\n" +
			"2. Preparation: sanding, masking and priming the panels.\n" +
			"3. Application: base coat and clear coat in our heated downdraft booth.\n" +
			"4. Curing and finishing: the paint is baked, then color-sanded and polished.\n\n" +
			"Single panels usually take 2-3 days; full resprays take 1-2 weeks.",
	},
	{
		name:  "exotic",
		match: words("exotic", "luxury", "ferrari", "lamborghini", "porsche", "mclaren", "bentley", "rolls royce", "aston martin", "maserati", "tesla"),
		short: "We're experienced with luxury and exotic vehicles, including aluminum and carbon fiber bodies, " +
			"and we follow manufacturer repair procedures.",
		detailed: "Here's how we handle luxury and exotic vehicles:\n\n" +
			"1. We pull the manufacturer's repair procedures for your exact model.\n" +
			"2. Aluminum and carbon fiber are repaired in a dedicated, contamination-free area.\n" +
			"3. We use OEM parts and specialty paint systems approved for your vehicle.\n" +
			"4. ADAS and sensor calibration is performed after structural or bumper work.\n\n" +
			"Timelines depend on parts availability; we'll give you a clear estimate up front.",
	},
	{
		name:  "collision",
		match: words("collision", "accident", "crash", "crashed", "wreck", "wrecked", "hit", "rear-ended", "rear ended", "fender bender"),
		short: "Sorry to hear about the accident! We handle complete collision repair and work with all insurance companies.",
		detailed: "Here's how our collision repair process works:\n\n" +
			"1. Free estimate and damage assessment, including a teardown for hidden damage.\n" +
			"2. Insurance: we work directly with your insurer and handle supplements.\n" +
			"3. Structural and frame repair on computerized measuring equipment.\n" +
			"4. Body repair, refinishing and color matching.\n" +
			"5. Reassembly, calibration and a final quality inspection and road test.\n\n" +
			"We keep you updated at every step.",
	},
	{
		name:  "frame",
		match: words("frame", "unibody", "structural", "chassis"),
		short: "We straighten frames and unibody structures on a computerized measuring system to factory specifications.",
		detailed: "Here's our frame repair process:\n\n" +
			"1. The vehicle is mounted on our frame machine and measured electronically.\n" +
			"2. Measurements are compared against factory dimensions.\n" +
			"3. Hydraulic pulls return the structure to spec; damaged sections are replaced where required.\n" +
			"4. A final measurement report confirms the repair.\n\n" +
			"Frame work usually adds 2-5 days to a collision repair.",
	},
	{
		name:  "hail",
		match: words("hail", "hailstorm", "hail storm", "hail damage"),
		short: "We repair hail damage, usually with paintless dent repair, and work directly with your insurance company.",
		detailed: "Here's how we repair hail damage:\n\n" +
			"1. We map and count every dent on each panel under inspection lights.\n" +
			"2. We write the estimate and coordinate with your insurer.\n" +
			"3. Most dents are removed with paintless dent repair, preserving your factory paint.\n" +
			"4. Panels that are too damaged are repaired conventionally or replaced.\n\n" +
			"Hail repairs typically take 3-7 days depending on severity.",
	},
	{
		name:  "door",
		match: words("door", "doors", "door panel"),
		short: "We repair and replace damaged doors, including dents, creases and misaligned doors that won't close properly.",
		detailed: "Here's our door repair process:\n\n" +
			"1. We check hinges, latch, glass and wiring for damage.\n" +
			"2. Dented skins are repaired, or the door shell is replaced when needed.\n" +
			"3. The door is aligned for even gaps and a proper seal.\n" +
			"4. We refinish and blend the paint, then reinstall trim and test windows and locks.",
	},
	{
		name:  "fender",
		match: words("fender", "fenders", "quarter panel", "wheel arch"),
		short: "We repair or replace fenders and quarter panels with precise color matching.",
		detailed: "Here's how we repair fenders and quarter panels:\n\n" +
			"1. Bolt-on fenders are often replaced with OEM or quality parts; quarter panels are usually repaired in place.\n" +
			"2. Damage is straightened, filled and primed.\n" +
			"3. We refinish and blend into the door and bumper for an invisible match.",
	},
	{
		name:  "glass",
		match: words("glass", "windshield", "windscreen", "window", "windows", "mirror"),
		short: "We handle windshield and window replacement through trusted glass partners, including ADAS camera calibration.",
		detailed: "Here's how glass replacement works:\n\n" +
			"1. We identify the correct glass for your VIN, including heated or sensor-equipped versions.\n" +
			"2. The old glass is removed and the frame is cleaned and primed.\n" +
			"3. New glass is installed with OEM-grade urethane.\n" +
			"4. Forward cameras and rain sensors are calibrated.",
	},
	{
		name:  "rust",
		match: words("rust", "rusty", "rusted", "corrosion"),
		short: "We repair rust by cutting out corroded metal and welding in new panels, then sealing and refinishing the area.",
		detailed: "Here's our rust repair process:\n\n" +
			"1. We find the full extent of the corrosion, which is often larger than it looks.\n" +
			"2. Rusted metal is cut out and replaced with new steel welded in place.\n" +
			"3. Seams are sealed and the area is treated with corrosion protection.\n" +
			"4. We prime, paint and blend to match.",
	},
	{
		name:  "ceramic",
		match: words("ceramic", "coating", "ppf", "paint protection", "clear bra"),
		short: "We offer ceramic coating and paint protection film to keep your finish looking new.",
		detailed: "Here's how ceramic coating works:\n\n" +
			"1. Decontamination wash and clay bar treatment.\n" +
			"2. Paint correction to remove swirls and light scratches.\n" +
			"3. The coating is applied panel by panel and cured.\n" +
			"4. Final inspection. Most coatings need 24 hours before the vehicle gets wet.",
	},
	{
		name:  "flood",
		match: words("flood", "flooded", "water damage", "submerged"),
		short: "We assess flood-damaged vehicles and help you work with your insurance company on repair or total-loss decisions.",
		detailed: "Here's how we handle flood damage:\n\n" +
			"1. We determine the water line and check electronics, modules and wiring.\n" +
			"2. Interior carpet, padding and seats are removed to dry and treat for mold.\n" +
			"3. We document everything for your insurance adjuster.\n" +
			"4. Repairs proceed once the claim is approved.",
	},
	{
		name:  "leather",
		match: words("leather", "upholstery", "seat", "seats", "interior"),
		short: "We repair interior damage including leather tears, upholstery and trim, often as part of a collision repair.",
		detailed: "Here's our interior repair process:\n\n" +
			"1. We assess whether the material can be repaired or needs replacement.\n" +
			"2. Tears and burns are filled, grained and color-matched.\n" +
			"3. Heavily damaged covers are replaced with matching material.",
	},
	{
		name:  "general",
		match: contains("fix my", "broken", "damaged", "damage to my"),
		short: "We can help with that! Tell us a little more about the damage, or book a free estimate and we'll take a look.",
		detailed: "Here's how a typical repair works with us:\n\n" +
			"1. Free estimate: we inspect the damage and explain your options.\n" +
			"2. Approval: you (or your insurer) approve the estimate.\n" +
			"3. Repair: our technicians complete the work using quality parts.\n" +
			"4. Pickup: we walk you through the repair and our lifetime warranty.",
	},
}

func repairRules() []Rule {
	rules := make([]Rule, 0, len(repairTopics))
	for _, t := range repairTopics {
		t := t
		rules = append(rules, Rule{
			Name:  t.name,
			Match: t.match,
			Respond: func(q string) string {
				if wantsProcess(q) {
					return t.detailed
				}
				return t.short
			},
		})
	}
	return rules
}

package enhance

import (
	"strings"
)

// Scenario pairs a caller trigger phrase with the instruction the agent
// should follow when it comes up.
type Scenario struct {
	Trigger     string
	Instruction string
}

// IndustryProfile is the canonical knowledge packet for one business vertical.
type IndustryProfile struct {
	Key             string
	DisplayName     string
	Tone            map[string]string // keyed by personality
	Terminology     []string
	Scenarios       []Scenario
	Guardrails      []string
	UrgencyKeywords []string
}

// ToneFor returns the personality-specific tone guidance, falling back to the
// professional entry so callers always get non-empty guidance.
func (p *IndustryProfile) ToneFor(personality string) string {
	if t, ok := p.Tone[personality]; ok && t != "" {
		return t
	}
	return p.Tone["professional"]
}

// industryRegistry is built once at package init and never mutated after.
// industryOrder preserves the declaration order so lookups that scan the
// registry resolve the same way on every call.
var industryRegistry, industryOrder = buildIndustryRegistry()

// aliases maps common normalized inputs onto registry keys.
var industryAliases = map[string]string{
	"dentist":           "dental",
	"dentalclinic":      "dental",
	"dentaloffice":      "dental",
	"dentistoffice":     "dental",
	"orthodontist":      "dental",
	"hvacrepair":        "hvac",
	"heatingandcooling": "hvac",
	"airconditioning":   "hvac",
	"plumber":           "plumbing",
	"electrician":       "electrical",
	"lawfirm":           "legal",
	"attorney":          "legal",
	"lawyer":            "legal",
	"doctor":            "medical",
	"medicalclinic":     "medical",
	"physician":         "medical",
	"vet":               "veterinary",
	"vetclinic":         "veterinary",
	"animalhospital":    "veterinary",
	"salon":             "beauty",
	"hairsalon":         "beauty",
	"spa":               "beauty",
	"barbershop":        "beauty",
	"carrepair":         "automotive",
	"autoshop":          "automotive",
	"autorepair":        "automotive",
	"autorepairshop":    "automotive",
	"mechanic":          "automotive",
	"realtor":           "realestate",
	"realty":            "realestate",
	"restaurant":        "restaurant",
	"cafe":              "restaurant",
	"gym":               "fitness",
	"fitnessstudio":     "fitness",
	"personaltraining":  "fitness",
	"cleaningservice":   "cleaning",
	"maidservice":       "cleaning",
	"janitorial":        "cleaning",
	"landscaper":        "landscaping",
	"lawncare":          "landscaping",
	"accountant":        "accounting",
	"cpa":               "accounting",
	"bookkeeping":       "accounting",
	"itsupport":         "technology",
	"softwarecompany":   "technology",
	"techsupport":       "technology",
}

// NormalizeIndustry case-folds a free-text business type and strips
// whitespace, hyphens, underscores and a few noise suffixes so that
// "Dental Clinic" and "dental-clinic" land on the same key.
func NormalizeIndustry(businessType string) string {
	s := strings.ToLower(strings.TrimSpace(businessType))
	s = strings.NewReplacer(" ", "", "-", "", "_", "", "&", "and", ".", "").Replace(s)
	return s
}

// LookupIndustry resolves an arbitrary business-type string against the
// registry. Unmatched input falls back to the generic "other" profile;
// this never errors.
func LookupIndustry(businessType string) *IndustryProfile {
	norm := NormalizeIndustry(businessType)
	if p, ok := industryRegistry[norm]; ok {
		return p
	}
	if key, ok := industryAliases[norm]; ok {
		return industryRegistry[key]
	}
	// Substring match catches inputs like "dental clinic downtown". Keys are
	// scanned in declaration order so an input containing several keys
	// classifies identically on every call.
	for _, key := range industryOrder {
		if key != "other" && strings.Contains(norm, key) {
			return industryRegistry[key]
		}
	}
	return industryRegistry["other"]
}

// IndustryKeys returns every registry key in declaration order.
func IndustryKeys() []string {
	keys := make([]string, len(industryOrder))
	copy(keys, industryOrder)
	return keys
}

func buildIndustryRegistry() (map[string]*IndustryProfile, []string) {
	profiles := []*IndustryProfile{
		{
			Key:         "dental",
			DisplayName: "Dental Practice",
			Tone: map[string]string{
				"professional": "Calm and clinical. Acknowledge that many callers are anxious about dental work; keep explanations precise and reassuring.",
				"friendly":     "Warm and reassuring. Dental anxiety is common, so soften clinical language and emphasize that the team is gentle.",
				"casual":       "Relaxed and upbeat. Keep dental talk simple and low-pressure while staying respectful of pain or anxiety.",
			},
			Terminology: []string{"cleaning", "filling", "crown", "root canal", "whitening", "extraction", "hygienist"},
			Scenarios: []Scenario{
				{Trigger: "tooth pain", Instruction: "Treat as urgent. Offer the earliest available appointment and ask how severe the pain is."},
				{Trigger: "insurance", Instruction: "Collect the insurance provider name and let them know the office will verify coverage before the visit."},
				{Trigger: "cleaning appointment", Instruction: "Offer routine cleaning slots and mention how long a standard cleaning takes."},
			},
			Guardrails: []string{
				"Never give medical or dental advice; only a dentist can diagnose.",
				"Never quote insurance coverage amounts; coverage is verified by the office.",
			},
			UrgencyKeywords: []string{"pain", "swelling", "bleeding", "broken tooth", "knocked out", "emergency"},
		},
		{
			Key:         "hvac",
			DisplayName: "HVAC Services",
			Tone: map[string]string{
				"professional": "Direct and competent. Callers often have a failing system; demonstrate urgency and technical credibility.",
				"friendly":     "Helpful and empathetic. A broken furnace or AC is stressful; reassure callers that help is on the way.",
				"casual":       "Down-to-earth and practical. Talk like a neighbor who knows heating and cooling.",
			},
			Terminology: []string{"furnace", "heat pump", "compressor", "thermostat", "duct", "refrigerant", "tune-up"},
			Scenarios: []Scenario{
				{Trigger: "no heat", Instruction: "Treat as urgent in cold weather. Collect the address and offer the earliest emergency slot."},
				{Trigger: "no cooling", Instruction: "Treat as urgent in hot weather, especially if the caller mentions elderly residents or children."},
				{Trigger: "maintenance plan", Instruction: "Describe the seasonal tune-up plan and offer to book a maintenance visit."},
			},
			Guardrails: []string{
				"Never quote a repair price before a technician has diagnosed the system.",
				"Never advise callers to open or repair equipment themselves.",
			},
			UrgencyKeywords: []string{"no heat", "no cooling", "gas smell", "leak", "sparking", "emergency"},
		},
		{
			Key:         "plumbing",
			DisplayName: "Plumbing Services",
			Tone: map[string]string{
				"professional": "Urgent and methodical. Water damage escalates quickly; triage first, pleasantries second.",
				"friendly":     "Calm and supportive. Plumbing emergencies panic people; keep the caller steady while collecting details.",
				"casual":       "Straight-talking and practical. No jargon unless the caller uses it first.",
			},
			Terminology: []string{"water heater", "drain", "sewer line", "shut-off valve", "fixture", "leak detection"},
			Scenarios: []Scenario{
				{Trigger: "burst pipe", Instruction: "Tell the caller to shut off the main water valve if they safely can, then book an emergency visit."},
				{Trigger: "clogged drain", Instruction: "Ask which fixture is affected and whether multiple drains back up at once."},
				{Trigger: "water heater", Instruction: "Ask the unit's approximate age and whether there is any leaking around the base."},
			},
			Guardrails: []string{
				"Never diagnose over the phone; only describe what a technician will check.",
				"Never promise a repair can be completed the same day before dispatch confirms.",
			},
			UrgencyKeywords: []string{"burst", "flooding", "sewage", "no water", "leak", "overflow"},
		},
		{
			Key:         "electrical",
			DisplayName: "Electrical Services",
			Tone: map[string]string{
				"professional": "Safety-first and precise. Electrical issues can be hazardous; prioritize safety instructions.",
				"friendly":     "Reassuring but firm on safety. Make callers comfortable while taking hazards seriously.",
				"casual":       "Approachable but never casual about safety warnings.",
			},
			Terminology: []string{"breaker panel", "circuit", "outlet", "GFCI", "surge protection", "rewiring"},
			Scenarios: []Scenario{
				{Trigger: "sparks", Instruction: "Tell the caller to switch off the affected breaker and keep clear; book an emergency visit."},
				{Trigger: "power out", Instruction: "Ask whether neighbors also lost power to rule out a utility outage before booking."},
				{Trigger: "panel upgrade", Instruction: "Collect the home's age and current panel amperage if known, then book an estimate."},
			},
			Guardrails: []string{
				"Never instruct callers to open a breaker panel or touch wiring.",
				"If the caller reports burning smells or smoke, tell them to call emergency services first.",
			},
			UrgencyKeywords: []string{"sparks", "burning smell", "smoke", "shock", "exposed wire"},
		},
		{
			Key:         "legal",
			DisplayName: "Law Firm",
			Tone: map[string]string{
				"professional": "Measured and discreet. Callers may be in distress or facing deadlines; convey competence and confidentiality.",
				"friendly":     "Compassionate and unhurried. Legal problems are personal; let callers feel heard before collecting details.",
				"casual":       "Plain-spoken and approachable, while preserving the gravity of legal matters.",
			},
			Terminology: []string{"consultation", "retainer", "case evaluation", "statute of limitations", "filing"},
			Scenarios: []Scenario{
				{Trigger: "court date", Instruction: "Treat as time-sensitive. Collect the date and offer the earliest consultation."},
				{Trigger: "free consultation", Instruction: "Explain the consultation policy and book an intake call."},
				{Trigger: "existing case", Instruction: "Collect the case or client reference and route a message to the attorney handling it."},
			},
			Guardrails: []string{
				"Never give legal advice or opinions on the merits of a case.",
				"Never discuss another client's matter or confirm the firm represents anyone.",
			},
			UrgencyKeywords: []string{"court date", "arrest", "deadline", "served", "hearing tomorrow"},
		},
		{
			Key:         "medical",
			DisplayName: "Medical Practice",
			Tone: map[string]string{
				"professional": "Clinical, calm and HIPAA-conscious. Collect only what scheduling requires.",
				"friendly":     "Kind and patient. Many callers are unwell or worried; warmth matters as much as efficiency.",
				"casual":       "Gentle and plain-spoken; avoid clinical jargon with callers.",
			},
			Terminology: []string{"appointment", "referral", "prescription refill", "new patient intake", "follow-up"},
			Scenarios: []Scenario{
				{Trigger: "prescription refill", Instruction: "Collect the medication name and pharmacy; explain the refill turnaround."},
				{Trigger: "new patient", Instruction: "Collect insurance and date of birth, then book a new-patient intake slot."},
				{Trigger: "test results", Instruction: "Never read or discuss results; take a message for the clinical staff."},
			},
			Guardrails: []string{
				"Never give medical advice or discuss test results.",
				"If the caller describes a life-threatening emergency, tell them to hang up and dial 911.",
			},
			UrgencyKeywords: []string{"chest pain", "can't breathe", "severe", "emergency", "911"},
		},
		{
			Key:         "veterinary",
			DisplayName: "Veterinary Clinic",
			Tone: map[string]string{
				"professional": "Caring and efficient. Pets are family; acknowledge concern while triaging quickly.",
				"friendly":     "Warm and animal-loving. Use the pet's name once you have it.",
				"casual":       "Affectionate and easygoing, but switch to urgency for emergencies.",
			},
			Terminology: []string{"wellness exam", "vaccination", "spay/neuter", "microchip", "boarding"},
			Scenarios: []Scenario{
				{Trigger: "ate something", Instruction: "Treat possible poisoning as urgent; collect what was eaten and when, and offer the earliest slot."},
				{Trigger: "vaccination", Instruction: "Ask which vaccines are due and book a wellness visit."},
				{Trigger: "boarding", Instruction: "Collect dates and confirm the pet's vaccinations are current."},
			},
			Guardrails: []string{
				"Never advise inducing vomiting or home treatment; route urgent cases to the vet.",
				"Never quote surgical prices without an exam.",
			},
			UrgencyKeywords: []string{"poison", "hit by car", "not breathing", "seizure", "bleeding"},
		},
		{
			Key:         "beauty",
			DisplayName: "Salon & Spa",
			Tone: map[string]string{
				"professional": "Polished and attentive. Bookings drive this business; be precise with times and stylists.",
				"friendly":     "Bubbly and welcoming. Make every caller feel like a regular.",
				"casual":       "Playful and trend-aware while keeping bookings accurate.",
			},
			Terminology: []string{"stylist", "color treatment", "balayage", "manicure", "facial", "blowout"},
			Scenarios: []Scenario{
				{Trigger: "specific stylist", Instruction: "Check the stylist's availability first; offer alternatives only if asked."},
				{Trigger: "bridal", Instruction: "Treat as high-value. Collect the event date and offer a consultation."},
				{Trigger: "running late", Instruction: "Thank them for calling ahead and note the arrival time for the stylist."},
			},
			Guardrails: []string{
				"Never guarantee a color or treatment result over the phone.",
				"Never double-book a stylist to fit a caller in.",
			},
			UrgencyKeywords: []string{"today", "walk-in", "event tonight", "wedding"},
		},
		{
			Key:         "automotive",
			DisplayName: "Auto Repair",
			Tone: map[string]string{
				"professional": "Knowledgeable and transparent. Car trouble breeds distrust; be clear about process and estimates.",
				"friendly":     "Patient and plain-spoken. Translate shop talk into everyday language.",
				"casual":       "Garage-friendly and honest; skip the upsell energy.",
			},
			Terminology: []string{"diagnostic", "brake service", "oil change", "check engine light", "alignment", "estimate"},
			Scenarios: []Scenario{
				{Trigger: "check engine", Instruction: "Offer a diagnostic appointment and ask whether the light is flashing, which is more urgent."},
				{Trigger: "tow", Instruction: "Collect the vehicle location and confirm whether the shop can receive a tow today."},
				{Trigger: "estimate", Instruction: "Explain that estimates follow a diagnostic; book the diagnostic slot."},
			},
			Guardrails: []string{
				"Never quote a repair price before diagnosis.",
				"Never tell a caller a vehicle is safe to drive; that is the technician's call.",
			},
			UrgencyKeywords: []string{"brakes", "stalled", "won't start", "smoking", "flashing light"},
		},
		{
			Key:         "realestate",
			DisplayName: "Real Estate",
			Tone: map[string]string{
				"professional": "Responsive and market-savvy. Leads go cold fast; capture contact details early.",
				"friendly":     "Enthusiastic and personable. Buying or selling is a life event; match the caller's excitement.",
				"casual":       "Conversational and low-pressure; nobody likes a pushy agent.",
			},
			Terminology: []string{"listing", "showing", "open house", "pre-approval", "closing", "offer"},
			Scenarios: []Scenario{
				{Trigger: "schedule a showing", Instruction: "Collect the property address, preferred times, and the caller's contact details."},
				{Trigger: "sell my home", Instruction: "Treat as a high-value lead; collect the address and book a valuation call."},
				{Trigger: "price", Instruction: "Share the listing price if it is in the knowledge base; otherwise take a message for the agent."},
			},
			Guardrails: []string{
				"Never negotiate or hint at acceptable offer ranges.",
				"Never share a seller's or buyer's personal circumstances.",
			},
			UrgencyKeywords: []string{"offer deadline", "closing", "under contract", "today"},
		},
		{
			Key:         "restaurant",
			DisplayName: "Restaurant",
			Tone: map[string]string{
				"professional": "Gracious and efficient, like a seasoned host. Reservations and wait times must be exact.",
				"friendly":     "Welcoming and appetizing. Talk about the menu with genuine enthusiasm.",
				"casual":       "Lively and informal, matching a neighborhood-spot vibe.",
			},
			Terminology: []string{"reservation", "party size", "private dining", "takeout", "dietary restrictions"},
			Scenarios: []Scenario{
				{Trigger: "reservation", Instruction: "Collect party size, date, time, and a contact number; confirm any large-party policy."},
				{Trigger: "allergy", Instruction: "Note the allergy on the reservation and assure the caller the kitchen will be informed."},
				{Trigger: "private event", Instruction: "Collect the headcount and date, then route to the events manager."},
			},
			Guardrails: []string{
				"Never guarantee a specific table or view.",
				"Never promise a dish can be made allergen-free; the kitchen confirms.",
			},
			UrgencyKeywords: []string{"tonight", "large party", "cancellation", "anniversary"},
		},
		{
			Key:         "fitness",
			DisplayName: "Fitness & Gym",
			Tone: map[string]string{
				"professional": "Energetic but informative. Explain memberships and class schedules crisply.",
				"friendly":     "Motivating and judgment-free. Many callers are nervous about starting; make it easy.",
				"casual":       "High-energy gym-buddy tone; celebrate the decision to call.",
			},
			Terminology: []string{"membership", "class schedule", "personal training", "day pass", "trial"},
			Scenarios: []Scenario{
				{Trigger: "membership price", Instruction: "Share listed membership tiers and offer a trial visit."},
				{Trigger: "cancel membership", Instruction: "Do not argue; explain the cancellation process and take a message for the manager."},
				{Trigger: "class schedule", Instruction: "Share the class times from the knowledge base and offer to reserve a spot."},
			},
			Guardrails: []string{
				"Never give fitness or medical advice.",
				"Never pressure a caller who wants to cancel.",
			},
			UrgencyKeywords: []string{"injury", "cancel", "billing error"},
		},
		{
			Key:         "cleaning",
			DisplayName: "Cleaning Services",
			Tone: map[string]string{
				"professional": "Trust-building and detail-oriented. Callers are inviting strangers into their home; emphasize vetting and reliability.",
				"friendly":     "Cheerful and accommodating. Make quoting and scheduling painless.",
				"casual":       "Easygoing and flexible about scheduling changes.",
			},
			Terminology: []string{"deep clean", "move-out clean", "recurring service", "square footage", "add-ons"},
			Scenarios: []Scenario{
				{Trigger: "quote", Instruction: "Collect square footage, bedrooms and bathrooms, and desired frequency for an estimate callback."},
				{Trigger: "move-out", Instruction: "Treat as time-sensitive; collect the move date and property size."},
				{Trigger: "reschedule", Instruction: "Accommodate politely and confirm the new time in the same call."},
			},
			Guardrails: []string{
				"Never commit to an exact price without the estimator's confirmation.",
				"Never promise a specific cleaner will be assigned.",
			},
			UrgencyKeywords: []string{"move-out", "inspection", "tomorrow", "same day"},
		},
		{
			Key:         "landscaping",
			DisplayName: "Landscaping & Lawn Care",
			Tone: map[string]string{
				"professional": "Seasonal and consultative. Tie services to the time of year and property needs.",
				"friendly":     "Neighborly and outdoorsy. Compliment the caller's interest in their yard.",
				"casual":       "Relaxed and practical, like talking over the fence.",
			},
			Terminology: []string{"mowing", "mulching", "irrigation", "hardscape", "seasonal cleanup", "estimate"},
			Scenarios: []Scenario{
				{Trigger: "estimate", Instruction: "Collect the address and service wanted; explain estimates are done on-site."},
				{Trigger: "storm damage", Instruction: "Treat downed trees or hanging limbs as urgent and book the earliest visit."},
				{Trigger: "recurring mowing", Instruction: "Collect lawn size and preferred day, then set up the recurring schedule."},
			},
			Guardrails: []string{
				"Never quote a firm price before the on-site estimate.",
				"Never advise removing trees near power lines; refer to the utility company.",
			},
			UrgencyKeywords: []string{"fallen tree", "storm", "irrigation leak", "flooding"},
		},
		{
			Key:         "accounting",
			DisplayName: "Accounting & Tax",
			Tone: map[string]string{
				"professional": "Precise and deadline-aware. Tax season callers are stressed; convey order and control.",
				"friendly":     "Calming and organized. Reassure callers their situation is routine and fixable.",
				"casual":       "Plain-English money talk; no accounting jargon.",
			},
			Terminology: []string{"tax return", "filing deadline", "bookkeeping", "audit", "extension", "quarterly estimates"},
			Scenarios: []Scenario{
				{Trigger: "deadline", Instruction: "Treat as time-sensitive. Collect the filing type and offer the earliest appointment or an extension consult."},
				{Trigger: "irs letter", Instruction: "Do not interpret the letter; reassure the caller and book a review with the accountant."},
				{Trigger: "new business", Instruction: "Collect the entity type and book an onboarding consultation."},
			},
			Guardrails: []string{
				"Never give tax advice or estimate refunds.",
				"Never ask for Social Security numbers over the phone.",
			},
			UrgencyKeywords: []string{"deadline", "audit", "irs", "penalty", "tomorrow"},
		},
		{
			Key:         "technology",
			DisplayName: "IT & Technology Services",
			Tone: map[string]string{
				"professional": "Structured and triage-oriented. Collect environment details before routing.",
				"friendly":     "Patient and non-condescending. Assume no technical background.",
				"casual":       "Helpdesk-friendly; keep it light even when systems are down.",
			},
			Terminology: []string{"ticket", "outage", "onboarding", "managed services", "backup", "remote session"},
			Scenarios: []Scenario{
				{Trigger: "system down", Instruction: "Treat as urgent. Collect company name, affected system, and user count, then escalate."},
				{Trigger: "new employee", Instruction: "Collect the start date and equipment needs, then open an onboarding ticket."},
				{Trigger: "ransomware", Instruction: "Treat as critical. Tell the caller to disconnect affected machines from the network and escalate immediately."},
			},
			Guardrails: []string{
				"Never walk a caller through system changes; that happens inside a ticket with a technician.",
				"Never confirm or discuss another client's infrastructure.",
			},
			UrgencyKeywords: []string{"down", "outage", "breach", "ransomware", "data loss"},
		},
		{
			Key:         "other",
			DisplayName: "General Business",
			Tone: map[string]string{
				"professional": "Courteous and efficient. Represent the business with composure and accuracy.",
				"friendly":     "Warm and helpful. Treat every caller like a valued customer.",
				"casual":       "Relaxed and personable while staying on task.",
			},
			Terminology: []string{"appointment", "quote", "services", "availability"},
			Scenarios: []Scenario{
				{Trigger: "pricing", Instruction: "Share listed prices from the knowledge base; otherwise offer to have someone follow up."},
				{Trigger: "speak to someone", Instruction: "Offer to take a detailed message or transfer per the transfer rules."},
			},
			Guardrails: []string{
				"Never invent details that are not in the business knowledge base.",
				"Never make commitments on behalf of the owner beyond booking and messages.",
			},
			UrgencyKeywords: []string{"urgent", "emergency", "asap"},
		},
	}

	reg := make(map[string]*IndustryProfile, len(profiles))
	order := make([]string, 0, len(profiles))
	for _, p := range profiles {
		reg[p.Key] = p
		order = append(order, p.Key)
	}
	return reg, order
}

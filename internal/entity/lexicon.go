package entity

// Lexicon is a fixed per-industry term list. Lexicon hits are the
// highest-precision extraction source.
type Lexicon struct {
	Industry string
	Terms    map[string]LexiconTerm
}

// LexiconTerm carries the type and confidence assigned to a known term.
type LexiconTerm struct {
	Canonical  string
	Type       Type
	Confidence float64
}

// DefaultLexicons covers the industries the pipeline ships with. Callers
// may inject their own set into the Recognizer.
func DefaultLexicons() []Lexicon {
	return []Lexicon{
		{
			Industry: "fitness",
			Terms: map[string]LexiconTerm{
				"vo2 max":           {Canonical: "VO2 Max", Type: TypeFitness, Confidence: 0.95},
				"vo2max":            {Canonical: "VO2 Max", Type: TypeFitness, Confidence: 0.95},
				"hiit":              {Canonical: "HIIT", Type: TypeFitness, Confidence: 0.95},
				"cardio":            {Canonical: "Cardio", Type: TypeFitness, Confidence: 0.85},
				"strength training": {Canonical: "Strength Training", Type: TypeFitness, Confidence: 0.9},
				"heart rate zone":   {Canonical: "Heart Rate Zone", Type: TypeFitness, Confidence: 0.9},
				"deadlift":          {Canonical: "Deadlift", Type: TypeFitness, Confidence: 0.9},
				"squat":             {Canonical: "Squat", Type: TypeFitness, Confidence: 0.85},
				"metabolic rate":    {Canonical: "Metabolic Rate", Type: TypeFitness, Confidence: 0.85},
				"endurance":         {Canonical: "Endurance", Type: TypeFitness, Confidence: 0.85},
			},
		},
		{
			Industry: "cannabis",
			Terms: map[string]LexiconTerm{
				"cbd":          {Canonical: "CBD", Type: TypeConcept, Confidence: 0.95},
				"thc":          {Canonical: "THC", Type: TypeConcept, Confidence: 0.95},
				"terpenes":     {Canonical: "Terpenes", Type: TypeConcept, Confidence: 0.9},
				"indica":       {Canonical: "Indica", Type: TypeConcept, Confidence: 0.9},
				"sativa":       {Canonical: "Sativa", Type: TypeConcept, Confidence: 0.9},
				"bong":         {Canonical: "Bong", Type: TypeProduct, Confidence: 0.9},
				"dab rig":      {Canonical: "Dab Rig", Type: TypeProduct, Confidence: 0.9},
				"isopropyl":    {Canonical: "Isopropyl Alcohol", Type: TypeMaterial, Confidence: 0.85},
				"borosilicate": {Canonical: "Borosilicate Glass", Type: TypeMaterial, Confidence: 0.9},
			},
		},
		{
			Industry: "technology",
			Terms: map[string]LexiconTerm{
				"machine learning":        {Canonical: "Machine Learning", Type: TypeTechnology, Confidence: 0.95},
				"artificial intelligence": {Canonical: "Artificial Intelligence", Type: TypeTechnology, Confidence: 0.95},
				"api":                     {Canonical: "API", Type: TypeTechnology, Confidence: 0.85},
				"cloud computing":         {Canonical: "Cloud Computing", Type: TypeTechnology, Confidence: 0.9},
				"saas":                    {Canonical: "SaaS", Type: TypeService, Confidence: 0.9},
				"blockchain":              {Canonical: "Blockchain", Type: TypeTechnology, Confidence: 0.9},
				"kubernetes":              {Canonical: "Kubernetes", Type: TypeTechnology, Confidence: 0.95},
				"encryption":              {Canonical: "Encryption", Type: TypeTechnology, Confidence: 0.85},
			},
		},
		{
			Industry: "health",
			Terms: map[string]LexiconTerm{
				"dental implant":   {Canonical: "Dental Implant", Type: TypeMedical, Confidence: 0.95},
				"root canal":       {Canonical: "Root Canal", Type: TypeMedical, Confidence: 0.95},
				"orthodontics":     {Canonical: "Orthodontics", Type: TypeMedical, Confidence: 0.9},
				"invisalign":       {Canonical: "Invisalign", Type: TypeBrand, Confidence: 0.95},
				"gingivitis":       {Canonical: "Gingivitis", Type: TypeMedical, Confidence: 0.9},
				"telehealth":       {Canonical: "Telehealth", Type: TypeService, Confidence: 0.9},
				"physical therapy": {Canonical: "Physical Therapy", Type: TypeMedical, Confidence: 0.9},
			},
		},
		{
			Industry: "mortgage",
			Terms: map[string]LexiconTerm{
				"refinance":     {Canonical: "Refinance", Type: TypeService, Confidence: 0.9},
				"interest rate": {Canonical: "Interest Rate", Type: TypeConcept, Confidence: 0.9},
				"down payment":  {Canonical: "Down Payment", Type: TypeConcept, Confidence: 0.9},
				"closing costs": {Canonical: "Closing Costs", Type: TypeConcept, Confidence: 0.9},
				"fha loan":      {Canonical: "FHA Loan", Type: TypeProduct, Confidence: 0.95},
				"va loan":       {Canonical: "VA Loan", Type: TypeProduct, Confidence: 0.95},
				"escrow":        {Canonical: "Escrow", Type: TypeConcept, Confidence: 0.9},
				"pre-approval":  {Canonical: "Pre-Approval", Type: TypeService, Confidence: 0.85},
			},
		},
	}
}

// lexiconFor returns the lexicon matching the industry hint, or nil.
func lexiconFor(lexicons []Lexicon, industry string) *Lexicon {
	for i := range lexicons {
		if lexicons[i].Industry == industry {
			return &lexicons[i]
		}
	}
	return nil
}

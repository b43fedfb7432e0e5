package semantic

// sentimentLexicon maps words to polarity in [-1, 1].
var sentimentLexicon = map[string]float64{
	"excellent": 0.9, "amazing": 0.9, "outstanding": 0.9, "perfect": 0.9,
	"fantastic": 0.85, "wonderful": 0.85, "superb": 0.85, "brilliant": 0.85,
	"great": 0.7, "love": 0.7, "best": 0.7, "awesome": 0.7,
	"good": 0.5, "nice": 0.5, "helpful": 0.5, "useful": 0.5,
	"enjoy": 0.5, "happy": 0.5, "impressive": 0.6, "recommend": 0.6,
	"effective": 0.5, "reliable": 0.5, "easy": 0.4, "fast": 0.4,
	"solid": 0.4, "clean": 0.3, "fine": 0.2, "okay": 0.1, "decent": 0.2,

	"terrible": -0.9, "horrible": -0.9, "awful": -0.9, "worst": -0.9,
	"disgusting": -0.85, "useless": -0.8, "broken": -0.7, "hate": -0.8,
	"bad": -0.6, "poor": -0.6, "disappointing": -0.7, "disappointed": -0.7,
	"slow": -0.4, "expensive": -0.3, "difficult": -0.4, "confusing": -0.5,
	"annoying": -0.6, "frustrating": -0.6, "problem": -0.4, "problems": -0.4,
	"issue": -0.3, "issues": -0.3, "fail": -0.7, "failed": -0.7,
	"waste": -0.7, "cheap": -0.3, "unreliable": -0.6, "buggy": -0.6,
}

// intensifiers multiply the polarity of the next sentiment-bearing token.
var intensifiers = map[string]float64{
	"very": 1.5, "extremely": 2.0, "incredibly": 2.0, "really": 1.3,
	"absolutely": 1.8, "totally": 1.5, "quite": 1.2, "highly": 1.5,
	"slightly": 0.5, "somewhat": 0.7, "barely": 0.4, "fairly": 0.8,
}

// negations flip the polarity of the next sentiment-bearing token.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true,
	"nobody": true, "nothing": true, "cannot": true, "can't": true,
	"won't": true, "don't": true, "doesn't": true, "didn't": true,
	"isn't": true, "wasn't": true, "aren't": true, "hardly": true,
}

// aspectNouns are the fixed aspects scored by aspect-based sentiment.
var aspectNouns = []string{
	"quality", "price", "service", "support", "delivery",
	"design", "performance", "value", "experience", "usability",
}

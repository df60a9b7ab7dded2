package bank

// Generated question shapes. Only id, type, and tags are read by the
// scheduler; everything else is payload handed back to the presenting
// client verbatim.

type HearPickQuestion struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Tags      []string        `json:"tags"`
	Prompt    string          `json:"prompt"`
	Audio     string          `json:"audio"`
	Answer    HearPickAnswer  `json:"answer"`
	Options   HearPickOptions `json:"options"`
	Important bool            `json:"important"`
}

type HearPickAnswer struct {
	Syllable   string `json:"syllable"`
	Tone       string `json:"tone"`
	ToneSymbol string `json:"tone_symbol"`
}

type HearPickOptions struct {
	SyllablePool []string          `json:"syllable_pool"`
	ToneSymbols  map[string]string `json:"tone_symbols"`
}

type MatchPairsQuestion struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Tags      []string    `json:"tags"`
	Prompt    string      `json:"prompt"`
	Pairs     []MatchPair `json:"pairs"`
	SourceSet []string    `json:"source_set"`
	Score     *float64    `json:"score"`
}

type MatchPair struct {
	ID      string `json:"id"`
	Audio   string `json:"audio"`
	Label   string `json:"label"`
	Tone    string `json:"tone"`
	Speaker string `json:"speaker"`
}

type ToneDiscriminationQuestion struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Tags     []string    `json:"tags"`
	Prompt   string      `json:"prompt"`
	Syllable string      `json:"syllable"`
	Cards    []ToneCard  `json:"cards"`
	Options  ToneOptions `json:"options"`
	Answers  []string    `json:"answers"`
}

type ToneCard struct {
	CardID     string `json:"card_id"`
	Audio      string `json:"audio"`
	Tone       string `json:"tone"`
	ToneSymbol string `json:"tone_symbol"`
	Speaker    string `json:"speaker"`
}

type ToneOptions struct {
	ToneSymbols     map[string]string `json:"tone_symbols"`
	IncludeSameTone bool              `json:"include_same_tone"`
}

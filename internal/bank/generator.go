package bank

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/toneperfect"
)

const (
	TypeHearPick           = "hear_pick"
	TypeMatchPairs         = "match_pairs"
	TypeToneDiscrimination = "tone_discrimination"

	tagImportant = "important"
)

// speakerCycle alternates female and male voices across consecutive
// cards so matching sets don't sound uniform.
var speakerCycle = []string{"FV1", "MV1", "FV2", "MV2", "FV3", "MV3"}

// Generator produces question-bank entries from a built syllable index.
// All randomness flows through the injected source, so a seeded rand
// yields a reproducible bank.
type Generator struct {
	index toneperfect.Index
	rng   *rand.Rand
}

func NewGenerator(index toneperfect.Index, rng *rand.Rand) *Generator {
	return &Generator{index: index, rng: rng}
}

// pickAudio returns the recording for the first available speaker in
// order, then falls back to any available speaker in canonical order.
// The fallback is the one intentional recovery in the generation path:
// a syllable with any recording at all should still produce a question.
func pickAudio(speakers map[string]*toneperfect.Entry, order []string) *toneperfect.Entry {
	for _, speaker := range order {
		if entry := speakers[speaker]; entry != nil {
			return entry
		}
	}
	for _, speaker := range toneperfect.Speakers {
		if entry := speakers[speaker]; entry != nil {
			return entry
		}
	}
	return nil
}

// HearPick builds one "hear it, identify syllable and tone" question
// per syllable and tone with audio available. Syllables from the common
// list are tagged important.
func (g *Generator) HearPick(common []string) []HearPickQuestion {
	commonSet := make(map[string]struct{}, len(common))
	for _, syllable := range common {
		commonSet[syllable] = struct{}{}
	}

	fullPool := make([]string, 0, len(g.index))
	for syllable := range g.index {
		fullPool = append(fullPool, syllable)
	}
	sort.Strings(fullPool)

	var questions []HearPickQuestion
	for _, syllable := range fullPool {
		_, important := commonSet[syllable]
		for _, tone := range toneperfect.Tones {
			audio := pickAudio(g.index[syllable][tone], speakerCycle)
			if audio == nil {
				continue
			}

			tags := []string{}
			if important {
				tags = append(tags, tagImportant)
			}
			questions = append(questions, HearPickQuestion{
				ID:     fmt.Sprintf("hear_%s_%s", syllable, tone),
				Type:   TypeHearPick,
				Tags:   tags,
				Prompt: "What's the syllable and tone of this audio?",
				Audio:  audio.Audio,
				Answer: HearPickAnswer{
					Syllable:   syllable,
					Tone:       tone,
					ToneSymbol: toneperfect.ToneSymbols[tone],
				},
				Options: HearPickOptions{
					SyllablePool: fullPool,
					ToneSymbols:  toneperfect.ToneSymbols,
				},
				Important: important,
			})
		}
	}
	return questions
}

// MatchPairs builds one audio-to-syllable matching question per tricky
// set. Sets with fewer than two resolvable members are skipped rather
// than emitted half-empty.
func (g *Generator) MatchPairs(sets []TrickySet) []MatchPairsQuestion {
	var questions []MatchPairsQuestion
	for setIndex, group := range sets {
		pairs, ok := g.buildPairs(group.Set)
		if !ok || len(pairs) < 2 {
			continue
		}

		g.rng.Shuffle(len(pairs), func(i, j int) {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		})
		questions = append(questions, MatchPairsQuestion{
			ID:        fmt.Sprintf("match_%d", setIndex),
			Type:      TypeMatchPairs,
			Tags:      []string{question.TagTricky},
			Prompt:    "Match each audio card to the correct syllable.",
			Pairs:     pairs,
			SourceSet: group.Set,
			Score:     group.Score,
		})
	}
	return questions
}

func (g *Generator) buildPairs(syllables []string) ([]MatchPair, bool) {
	var pairs []MatchPair
	for i, syllable := range syllables {
		tones, ok := g.index[syllable]
		if !ok {
			return nil, false
		}

		speaker := speakerCycle[i%len(speakerCycle)]
		preferred := append([]string{speaker}, speakerCycle...)

		// Prefer tone 1, then fall back through 2, 3, 4.
		var audio *toneperfect.Entry
		var chosenTone string
		for _, tone := range toneperfect.Tones {
			if audio = pickAudio(tones[tone], preferred); audio != nil {
				chosenTone = tone
				break
			}
		}
		if audio == nil {
			return nil, false
		}

		pairs = append(pairs, MatchPair{
			ID:      fmt.Sprintf("%s_%s_%s", syllable, chosenTone, audio.Meta.Speaker),
			Audio:   audio.Audio,
			Label:   syllable,
			Tone:    chosenTone,
			Speaker: audio.Meta.Speaker,
		})
	}
	return pairs, true
}

// ToneDiscrimination builds, for each listed syllable with full
// four-tone coverage, a five-card question: the four tones plus one
// duplicate, shuffled.
func (g *Generator) ToneDiscrimination(syllables []string) []ToneDiscriminationQuestion {
	var questions []ToneDiscriminationQuestion
	for _, syllable := range syllables {
		entry, ok := g.index[syllable]
		if !ok {
			continue
		}

		var availableTones []string
		for _, tone := range toneperfect.Tones {
			if pickAudio(entry[tone], speakerCycle) != nil {
				availableTones = append(availableTones, tone)
			}
		}
		if len(availableTones) < 4 {
			continue
		}

		baseTones := availableTones[:4]
		duplicate := baseTones[g.rng.Intn(len(baseTones))]
		sequence := append(append([]string{}, baseTones...), duplicate)
		g.rng.Shuffle(len(sequence), func(i, j int) {
			sequence[i], sequence[j] = sequence[j], sequence[i]
		})

		cards := make([]ToneCard, 0, len(sequence))
		answers := make([]string, 0, len(sequence))
		for cardIndex, tone := range sequence {
			audio := pickAudio(entry[tone], speakerCycle)
			cards = append(cards, ToneCard{
				CardID:     fmt.Sprintf("%s_%s_%d", syllable, tone, cardIndex),
				Audio:      audio.Audio,
				Tone:       tone,
				ToneSymbol: toneperfect.ToneSymbols[tone],
				Speaker:    audio.Meta.Speaker,
			})
			answers = append(answers, tone)
		}

		questions = append(questions, ToneDiscriminationQuestion{
			ID:       fmt.Sprintf("tone_%s", syllable),
			Type:     TypeToneDiscrimination,
			Tags:     []string{},
			Prompt:   fmt.Sprintf("Identify the tone for each card of '%s'.", syllable),
			Syllable: syllable,
			Cards:    cards,
			Options: ToneOptions{
				ToneSymbols:     toneperfect.ToneSymbols,
				IncludeSameTone: true,
			},
			Answers: answers,
		})
	}
	return questions
}

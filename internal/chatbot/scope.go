package chatbot

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// shortMessageLength is the length at or below which any message is
// treated as conversational.
const shortMessageLength = 50

var topicKeywords = []string{
	"red cross", "blood", "donate", "donating", "donation", "volunteer", "volunteering",
	"disaster", "relief", "emergency", "first aid", "training", "health", "community",
	"humanitarian", "tripura", "agartala", "membership", "member", "help", "service",
	"program", "contact", "ircs", "camp", "medical", "assistance", "support",
}

var conversationalPhrases = []string{
	"first time", "never done", "new to", "beginner", "started", "how do i",
	"what do i need", "tell me more", "interested", "want to know",
	"yes", "no", "okay", "thanks", "thank you", "hello", "hi", "hey",
	"good morning", "good afternoon", "good evening", "namaste",
	"i am", "i'm", "i want", "i need", "i would like", "can you",
	"please", "sure", "of course", "definitely", "maybe", "probably",
}

// phraseSet matches whole words or phrases, allowing a trailing plural "s".
type phraseSet []*regexp.Regexp

func newPhraseSet(phrases []string) phraseSet {
	set := make(phraseSet, 0, len(phrases))
	for _, p := range phrases {
		set = append(set, regexp.MustCompile(`\b`+regexp.QuoteMeta(p)+`s?\b`))
	}
	return set
}

func (s phraseSet) matches(lower string) bool {
	for _, re := range s {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

var (
	topicSet          = newPhraseSet(topicKeywords)
	conversationalSet = newPhraseSet(conversationalPhrases)
)

// InScope reports whether msg should be answered. Messages about the
// organization's work, conversational replies and short messages pass.
func InScope(msg string) bool {
	lower := strings.ToLower(msg)
	if topicSet.matches(lower) || conversationalSet.matches(lower) {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(msg)) <= shortMessageLength
}

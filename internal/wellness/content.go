package wellness

import (
	"hash/fnv"
	"math/rand"
	"time"
)

var affirmations = []string{
	"I am capable of amazing things.",
	"I choose to be happy and healthy today.",
	"I am worthy of love and respect.",
	"I trust in my ability to overcome challenges.",
	"I am grateful for all the good in my life.",
	"I am strong and resilient.",
	"I embrace new opportunities with courage.",
	"I radiate positivity and inspire others.",
	"I am deserving of peace and happiness.",
	"I believe in myself and my dreams.",
}

var resources = []string{
	"Crisis Hotline: 1-800-273-8255",
	"Online Therapy: www.betterhelp.com",
	"Mindfulness App: Headspace",
	"Support Group Finder: www.supportgroups.com",
	"Suicide Prevention Lifeline: 1-800-273-8255",
	"National Alliance on Mental Illness: www.nami.org",
	"Anxiety and Depression Association of America: www.adaa.org",
	"https://sjd.kerala.gov.in/scheme-info.php?scheme_id=IDky",
}

var crisisLines = []string{
	"National Suicide Prevention Lifeline: 1-800-273-8255",
	"Crisis Text Line: Text HOME to 741741",
	"Veterans Crisis Line: 1-800-273-8255 (Press 1)",
	"SAMHSA National Helpline: 1-800-662-4357",
	"National Domestic Violence Hotline: 1-800-799-7233",
	"RAINN National Sexual Assault Hotline: 1-800-656-4673",
}

// Affirmations returns all affirmations.
func Affirmations() []string { return clone(affirmations) }

// Resources returns the support resource list.
func Resources() []string { return clone(resources) }

// CrisisLines returns the crisis hotline list.
func CrisisLines() []string { return clone(crisisLines) }

// Affirmation picks one affirmation at random. A nil r uses the global source.
func Affirmation(r *rand.Rand) string {
	if r == nil {
		return affirmations[rand.Intn(len(affirmations))]
	}
	return affirmations[r.Intn(len(affirmations))]
}

// DailyAffirmation returns the same affirmation for every call on a calendar day.
func DailyAffirmation(day time.Time) string {
	h := fnv.New32a()
	h.Write([]byte(day.Format("2006-01-02")))
	return affirmations[h.Sum32()%uint32(len(affirmations))]
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

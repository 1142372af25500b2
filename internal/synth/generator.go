// Package synth produces structurally valid job-listing candidates for a
// search request. It stands in for a live job-board fetch: the batch size
// and content vary across calls, but every candidate satisfies the recency
// window it was generated under.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"jobradar/internal/domain/job"
)

const (
	minBatchSize = 5
	maxBatchSize = 30
)

// Generator synthesizes candidate listings. The random source is injected
// so tests can pin output deterministically.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// Generate returns a batch of candidates for the given search. Every
// candidate's posting date falls within the last timeRangeDays days, so the
// batch always qualifies under the caller's own recency filter. Source URLs
// carry a large random identifier; collision with previously stored rows is
// possible and left to the persistence layer to classify.
func (g *Generator) Generate(jobTitle, location string, timeRangeDays int) []job.Candidate {
	if timeRangeDays < 1 {
		timeRangeDays = 1
	}

	titles := titleVariations(jobTitle)
	companies := companyPool(jobTitle)

	count := minBatchSize + g.rng.Intn(maxBatchSize-minBatchSize+1)
	today := g.today()

	out := make([]job.Candidate, 0, count)
	for i := 0; i < count; i++ {
		title := titles[g.rng.Intn(len(titles))]
		company := companies[g.rng.Intn(len(companies))]
		daysAgo := g.rng.Intn(timeRangeDays + 1)

		out = append(out, job.Candidate{
			Title:       title,
			CompanyName: company,
			Location:    location,
			Description: g.description(title, company, jobTitle),
			PostingDate: today.AddDate(0, 0, -daysAgo),
			SourceURL:   g.sourceURL(),
		})
	}
	return out
}

func (g *Generator) today() time.Time {
	y, m, d := g.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (g *Generator) sourceURL() string {
	id := 1_000_000_000 + g.rng.Int63n(9_000_000_000)
	return fmt.Sprintf("https://linkedin.com/jobs/view/%d", id)
}

func (g *Generator) description(title, company, searched string) string {
	searched = strings.ToLower(searched)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(openingTemplates[g.rng.Intn(len(openingTemplates))], company, title, searched))

	b.WriteString("\n\nKey Responsibilities:\n")
	b.WriteString(strings.Join(g.pickBullets(responsibilityBullets, searched), "\n"))

	b.WriteString("\n\nRequirements:\n")
	b.WriteString(strings.Join(g.pickBullets(requirementBullets, searched), "\n"))

	b.WriteString("\n\n")
	b.WriteString(closingLine)
	return b.String()
}

// pickBullets returns 3-5 bullets in shuffled order so that repeated
// generations for the same title and company still differ.
func (g *Generator) pickBullets(pool []string, searched string) []string {
	idx := g.rng.Perm(len(pool))
	n := 3 + g.rng.Intn(3)
	if n > len(idx) {
		n = len(idx)
	}

	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		line := pool[i]
		if strings.Contains(line, "%s") {
			line = fmt.Sprintf(line, searched)
		}
		out = append(out, line)
	}
	return out
}

// titleVariations expands a base title into the set candidates are drawn
// from: the base itself, seniority-prefixed and suffixed forms, and
// related roles when the base matches a known keyword family.
func titleVariations(base string) []string {
	out := []string{base}
	for _, p := range seniorityPrefixes {
		out = append(out, p+" "+base)
	}
	for _, s := range roleSuffixes {
		out = append(out, base+" "+s)
	}

	lower := strings.ToLower(base)
	if strings.Contains(lower, "data analyst") {
		out = append(out, dataRelatedTitles...)
	} else if strings.Contains(lower, "software engineer") {
		out = append(out, engineeringRelatedTitles...)
	}
	return out
}

// companyPool selects a topically plausible employer pool by keyword family.
func companyPool(jobTitle string) []string {
	lower := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(lower, "data") || strings.Contains(lower, "analyst"):
		return dataCompanies
	case strings.Contains(lower, "software") || strings.Contains(lower, "engineer"):
		return engineeringCompanies
	default:
		return generalCompanies
	}
}

// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// ErrSearchFailed is returned when the single-name search tier cannot reach
// the service. The taxonomy run is abandoned.
var ErrSearchFailed = errors.New("taxonomy search failed")

const (
	scientificNameColumn  = "scientificName"
	defaultMaxSuggestions = 5
)

// Validator checks the scientificName column of a dataset.
type Validator struct {
	client          Client
	maxSuggestions  int
	includeSynonyms bool
	terms           []string
}

// NewValidator creates a Validator. Suggestion limits and the atlas term list
// come from cfg; an unknown atlas falls back to vocab.DefaultAtlas.
func NewValidator(client Client, cfg *config.TaxonomyConfig) *Validator {
	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	atlas := cfg.Atlas
	if !vocab.KnownAtlas(atlas) {
		atlas = vocab.DefaultAtlas
	}
	return &Validator{
		client:          client,
		maxSuggestions:  maxSuggestions,
		includeSynonyms: cfg.IncludeSynonyms,
		terms:           vocab.TaxonTerms(atlas),
	}
}

// Validate builds a TaxonReport for ds. It returns (nil, nil) when ds has no
// scientificName column. The only error is a wrapped ErrSearchFailed.
func (v *Validator) Validate(ctx context.Context, ds *dataset.Dataset) (*models.TaxonReport, error) {
	column, ok := ds.Column(scientificNameColumn)
	if !ok {
		return nil, nil
	}

	names := distinctNames(column)
	metrics.TaxonomyNamesChecked.Add(float64(len(names)))

	recognised := v.matchByClassification(ctx, names)

	report := &models.TaxonReport{UnrecognisedTaxa: []models.UnrecognisedTaxon{}}
	for _, name := range names {
		if recognised[normalizeName(name)] {
			continue
		}
		taxon, err := v.suggest(ctx, name)
		if err != nil {
			return nil, err
		}
		metrics.TaxonomyUnrecognisedNames.WithLabelValues(string(taxon.MatchSource)).Inc()
		report.UnrecognisedTaxa = append(report.UnrecognisedTaxa, taxon)
	}

	if len(report.UnrecognisedTaxa) > 0 {
		report.HasInvalidTaxa = true
		report.ValidTaxonCount = 0
	} else {
		report.ValidTaxonCount = validTaxonCount(ds)
	}

	logging.Ctx(ctx).Debug().
		Int("names", len(names)).
		Int("unrecognised", len(report.UnrecognisedTaxa)).
		Int("valid_taxon_count", report.ValidTaxonCount).
		Msg("Taxonomy validation complete")

	return report, nil
}

// matchByClassification returns the normalized names the batch match recognised.
// A transport failure is logged and recognises nothing.
func (v *Validator) matchByClassification(ctx context.Context, names []string) map[string]bool {
	recognised := make(map[string]bool, len(names))
	if len(names) == 0 {
		return recognised
	}

	matches, err := v.client.MatchByClassification(ctx, names)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("names", len(names)).Msg("Classification match failed, treating all names as unmatched")
		return recognised
	}

	for _, m := range matches {
		if m.ScientificName != "" {
			recognised[normalizeName(m.ScientificName)] = true
		}
	}
	return recognised
}

// suggest runs the autocomplete and search tiers for one unmatched name.
func (v *Validator) suggest(ctx context.Context, name string) (models.UnrecognisedTaxon, error) {
	candidates, err := v.client.Autocomplete(ctx, name, v.maxSuggestions, v.includeSynonyms)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("name", name).Msg("Autocomplete failed, falling back to search")
		candidates = nil
	}
	if len(candidates) > 0 {
		return v.fromCandidate(name, candidates[0]), nil
	}

	result, err := v.client.Search(ctx, name)
	if err != nil {
		return models.UnrecognisedTaxon{}, fmt.Errorf("%w for %q: %w", ErrSearchFailed, name, err)
	}
	if result == nil || !result.Success {
		logging.Ctx(ctx).Debug().Str("name", name).Msg("No suggestion found for scientific name")
		return unresolved(name), nil
	}

	return models.UnrecognisedTaxon{
		OriginalName:   name,
		ProposedMatch:  result.ScientificName,
		ProposedRank:   result.Rank,
		MatchSource:    models.MatchSourceSearch,
		Classification: v.restrict(result.Classification()),
	}, nil
}

// fromCandidate prefers the candidate itself, then its first ranked synonym.
func (v *Validator) fromCandidate(name string, c AutocompleteCandidate) models.UnrecognisedTaxon {
	if c.Ranked() {
		return models.UnrecognisedTaxon{
			OriginalName:   name,
			ProposedMatch:  c.Name,
			ProposedRank:   c.RankName(),
			MatchSource:    models.MatchSourceAutocomplete,
			Classification: v.restrict(c.Cl),
		}
	}

	for _, synonym := range c.SynonymMatch {
		if synonym.Ranked() {
			return models.UnrecognisedTaxon{
				OriginalName:   name,
				ProposedMatch:  synonym.Name,
				ProposedRank:   synonym.RankName(),
				MatchSource:    models.MatchSourceSynonym,
				Classification: v.restrict(synonym.Cl),
			}
		}
	}

	return unresolved(name)
}

// restrict keeps the atlas rank terms present in cl.
func (v *Validator) restrict(cl map[string]string) map[string]string {
	out := make(map[string]string, len(v.terms))
	for _, term := range v.terms {
		if value, ok := cl[term]; ok && value != "" {
			out[term] = value
		}
	}
	return out
}

func unresolved(name string) models.UnrecognisedTaxon {
	return models.UnrecognisedTaxon{
		OriginalName:   name,
		MatchSource:    models.MatchSourceNone,
		Classification: map[string]string{},
	}
}

// distinctNames returns the populated names of column in first-appearance order.
func distinctNames(column dataset.Column) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, value := range column.Values {
		if value.IsNull() {
			continue
		}
		name := value.Text()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// validTaxonCount is the smallest populated count across the required
// taxonomy columns, excluding vernacularName, capped at the row count.
func validTaxonCount(ds *dataset.Dataset) int {
	count := ds.RowCount()
	for _, name := range vocab.RequiredTaxonomyColumns() {
		if name == vocab.TaxonomyCountExcluded {
			continue
		}
		if populated := ds.PopulatedCount(name); populated < count {
			count = populated
		}
	}
	return count
}

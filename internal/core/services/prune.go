package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Prune resolves optional blocks on their own.
//
// A block whose field has a value keeps its region and has its token replaced
// inside that region only. A block whose field is empty loses the whole region.
// A region that no longer exists is treated as already pruned unless its token
// is still in the markup, which means the template drifted and the document
// cannot be rendered safely.
func Prune(markup []byte, blocks []domain.OptionalBlock, values *domain.FieldValues) ([]byte, error) {
	out, _, err := Render(markup, nil, blocks, values, nil)
	return out, err
}

// Render prunes optional blocks and then fills block tokens and placeholders
// in a single scan, so no inserted value is ever scanned again.
// It also returns the reserved glyphs of the template markup that were left
// unreplaced, in order of first appearance. Glyphs inside inserted values are
// client data and never reported. A nil reserved reports nothing.
func Render(
	markup []byte,
	placeholders []domain.Placeholder,
	blocks []domain.OptionalBlock,
	values *domain.FieldValues,
	reserved func(rune) bool,
) ([]byte, []rune, error) {
	markup, err := pruneRegions(markup, blocks, values)
	if err != nil {
		return nil, nil, err
	}

	spans, err := indexRegions(markup)
	if err != nil {
		return nil, nil, err
	}
	var kept []keptBlock
	for _, block := range blocks {
		span, ok := spans[strings.ToUpper(block.RegionID)]
		if !ok {
			continue
		}
		kept = append(kept, keptBlock{
			token: block.Token,
			span:  span,
			value: escapeMarkup(resolve(block.Field, values)),
		})
	}
	out, residual := fill(markup, placeholderTable(placeholders, values), kept, reserved)
	return out, residual, nil
}

// pruneRegions deletes the region of every block whose field is empty.
// Tokens of kept blocks are left in place.
func pruneRegions(markup []byte, blocks []domain.OptionalBlock, values *domain.FieldValues) ([]byte, error) {
	for _, block := range blocks {
		spans, err := indexRegions(markup)
		if err != nil {
			return nil, err
		}

		span, ok := spans[strings.ToUpper(block.RegionID)]
		if !ok {
			if bytes.ContainsRune(markup, block.Token) {
				return nil, fmt.Errorf("%w: region %s for %s", domain.ErrRegionMissing, block.RegionID, block.Field.Name)
			}
			continue
		}

		if resolve(block.Field, values) == "" {
			logger.Debug("Pruning region %s (%s empty)", block.RegionID, block.Field.Name)
			markup = splice(markup, span, nil)
		}
	}
	return markup, nil
}

func splice(markup []byte, span region, replacement []byte) []byte {
	out := make([]byte, 0, len(markup)-int(span.end-span.start)+len(replacement))
	out = append(out, markup[:span.start]...)
	out = append(out, replacement...)
	out = append(out, markup[span.end:]...)
	return out
}

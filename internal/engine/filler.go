package engine

import (
	"math"

	"github.com/gridfab/gridplate/internal/model"
)

// Fill splits the job of covering one gap axis into spacer pieces. The
// piece count is the smallest that satisfies both the maximum piece
// length and the maximum aspect ratio; the length is then divided
// equally so no piece ends up more awkward than the rest.
func Fill(gap, length, maxLength, maxAspect float64) ([]model.FillerSpec, error) {
	if gap <= 0 || length <= 0 {
		return nil, ErrInvalidDimension
	}
	if maxLength <= 0 || maxAspect <= 0 {
		return nil, ErrInvalidFillConstraints
	}

	byLength := int(math.Ceil(length / maxLength))
	byAspect := int(math.Ceil(length / (gap * maxAspect)))

	numPieces := byLength
	if byAspect > numPieces {
		numPieces = byAspect
	}

	if numPieces == 1 {
		return []model.FillerSpec{{Width: gap, Depth: length}}, nil
	}

	pieceLength := length / float64(numPieces)
	pieces := make([]model.FillerSpec, numPieces)
	for i := range pieces {
		pieces[i] = model.FillerSpec{Width: gap, Depth: pieceLength}
	}
	return pieces, nil
}

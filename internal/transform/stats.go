package transform

import (
	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// ChannelStats holds the spread of one channel over a region.
type ChannelStats struct {
	Min  uint8 `json:"min"`
	Max  uint8 `json:"max"`
	Mean int   `json:"mean"` // truncated
}

// RegionStats summarizes the colors of a region.
type RegionStats struct {
	Region grid.Region  `json:"region"`
	Pixels int          `json:"pixels"`
	Red    ChannelStats `json:"red"`
	Green  ChannelStats `json:"green"`
	Blue   ChannelStats `json:"blue"`
}

// Stats returns per-channel minimum, maximum and mean over r. Regions
// reaching outside g return a *grid.BoundsError. An empty region yields zero
// pixels and zeroed statistics.
func Stats(g grid.Grid, r grid.Region) (*RegionStats, error) {
	if err := r.Check(g); err != nil {
		return nil, err
	}

	out := &RegionStats{Region: r}
	if r.Empty() {
		return out, nil
	}

	var acc [3]channelAcc
	for i := range acc {
		acc[i].min = 255
	}
	for row := r.RowStart; row < r.RowEnd; row++ {
		for col := r.ColStart; col < r.ColEnd; col++ {
			c := g.At(row, col)
			acc[0].add(c.R)
			acc[1].add(c.G)
			acc[2].add(c.B)
		}
	}

	out.Pixels = r.Cells()
	out.Red = acc[0].stats(out.Pixels)
	out.Green = acc[1].stats(out.Pixels)
	out.Blue = acc[2].stats(out.Pixels)
	return out, nil
}

type channelAcc struct {
	sum      int
	min, max uint8
}

func (a *channelAcc) add(v uint8) {
	a.sum += int(v)
	if v < a.min {
		a.min = v
	}
	if v > a.max {
		a.max = v
	}
}

func (a *channelAcc) stats(n int) ChannelStats {
	return ChannelStats{Min: a.min, Max: a.max, Mean: a.sum / n}
}

package costmodel

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrBadSite indicates a site with a non-finite coordinate or elevation.
var ErrBadSite = errors.New("costmodel: invalid site")

// Site is a geographic location: lon/lat point plus elevation in metres.
type Site struct {
	Point     orb.Point
	Elevation float64
}

// Geo is a Model over geographic sites.
//
//	cost(i→j) = haversine(i, j) + ClimbPenalty · max(0, elev[j] − elev[i])
//
// Climbing costs extra and descending is free, which makes the model
// asymmetric even though the distance term is symmetric. Pairs marked with
// WithBlocked are Unreachable in the given direction only.
type Geo struct {
	sites        []Site
	climbPenalty float64
	blocked      map[[2]int]struct{}
}

var _ Model = (*Geo)(nil)

// GeoOption configures a Geo model.
type GeoOption func(*Geo)

// WithClimbPenalty sets the extra cost per metre of ascent.
func WithClimbPenalty(p float64) GeoOption {
	return func(g *Geo) { g.climbPenalty = p }
}

// WithBlocked marks the directed link from→to as missing.
func WithBlocked(from, to int) GeoOption {
	return func(g *Geo) { g.blocked[[2]int{from, to}] = struct{}{} }
}

// NewGeo validates sites and options and returns a Geo model.
//
// Errors: ErrEmptyInput, ErrBadSite (NaN/Inf coordinate or elevation),
// ErrNegativeCost (negative climb penalty), ErrIndexOutOfRange (blocked
// link outside the site range).
func NewGeo(sites []Site, opts ...GeoOption) (*Geo, error) {
	if len(sites) == 0 {
		return nil, ErrEmptyInput
	}
	g := &Geo{
		sites:   append([]Site(nil), sites...),
		blocked: make(map[[2]int]struct{}),
	}
	var opt GeoOption
	for _, opt = range opts {
		opt(g)
	}

	var (
		i int
		s Site
	)
	for i, s = range g.sites {
		if !finite(s.Point.Lon()) || !finite(s.Point.Lat()) || !finite(s.Elevation) {
			return nil, fmt.Errorf("%w: site %d", ErrBadSite, i)
		}
	}
	if g.climbPenalty < 0 || math.IsNaN(g.climbPenalty) {
		return nil, fmt.Errorf("%w: climb penalty %g", ErrNegativeCost, g.climbPenalty)
	}
	var link [2]int
	for link = range g.blocked {
		if link[0] < 0 || link[0] >= len(sites) || link[1] < 0 || link[1] >= len(sites) {
			return nil, fmt.Errorf("%w: blocked link %d→%d", ErrIndexOutOfRange, link[0], link[1])
		}
	}

	return g, nil
}

// Len returns the number of sites.
func (g *Geo) Len() int { return len(g.sites) }

// Cost returns the haversine distance in metres plus the climb penalty.
func (g *Geo) Cost(i, j int) float64 {
	if i == j || i < 0 || j < 0 || i >= len(g.sites) || j >= len(g.sites) {
		return Unreachable
	}
	if _, ok := g.blocked[[2]int{i, j}]; ok {
		return Unreachable
	}
	d := geo.DistanceHaversine(g.sites[i].Point, g.sites[j].Point)
	if climb := g.sites[j].Elevation - g.sites[i].Elevation; climb > 0 {
		d += g.climbPenalty * climb
	}

	return d
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

package location

import (
  "fmt"
  "strconv"
  "strings"
  "sync"

  "twiderex.local/twiderex/flow"
)

type Location struct {
  Latitude  float64 `json:"latitude"`
  Longitude float64 `json:"longitude"`
}

type Provider interface {
  Location() *flow.StateFlow[*Location]
  Enable()
  Disable()
}

// StaticProvider reports one fixed position while enabled.
type StaticProvider struct {
  mu      sync.Mutex
  fixed   *Location
  enabled int
  data    *flow.StateFlow[*Location]
}

func NewStaticProvider(fixed *Location) *StaticProvider {
  return &StaticProvider{
    fixed: fixed,
    data:  flow.NewStateFlow[*Location](nil),
  }
}

// Parse reads "lat,long". An empty value yields no location.
func Parse(value string) (*Location, error) {
  value = strings.TrimSpace(value)
  if value == "" {
    return nil, nil
  }
  parts := strings.Split(value, ",")
  if len(parts) != 2 {
    return nil, fmt.Errorf("invalid location: %q", value)
  }
  lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
  if err != nil {
    return nil, fmt.Errorf("invalid latitude: %w", err)
  }
  long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
  if err != nil {
    return nil, fmt.Errorf("invalid longitude: %w", err)
  }
  if lat < -90 || lat > 90 || long < -180 || long > 180 {
    return nil, fmt.Errorf("location out of range: %q", value)
  }
  return &Location{Latitude: lat, Longitude: long}, nil
}

func (p *StaticProvider) Location() *flow.StateFlow[*Location] {
  return p.data
}

func (p *StaticProvider) Enable() {
  p.mu.Lock()
  defer p.mu.Unlock()
  p.enabled++
  p.data.Set(p.fixed)
}

func (p *StaticProvider) Disable() {
  p.mu.Lock()
  defer p.mu.Unlock()
  if p.enabled > 0 {
    p.enabled--
  }
  if p.enabled == 0 {
    p.data.Set(nil)
  }
}

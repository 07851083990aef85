package viewmodels

import (
  "sync"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/flow"
)

type VoteExpired int64

const (
  VoteExpiredMin5  VoteExpired = 300
  VoteExpiredMin30 VoteExpired = 1800
  VoteExpiredHour1 VoteExpired = 3600
  VoteExpiredHour6 VoteExpired = 21600
  VoteExpiredDay1  VoteExpired = 86400
  VoteExpiredDay3  VoteExpired = 259200
  VoteExpiredDay7  VoteExpired = 604800
)

func VoteExpiredValues() []VoteExpired {
  return []VoteExpired{
    VoteExpiredMin5,
    VoteExpiredMin30,
    VoteExpiredHour1,
    VoteExpiredHour6,
    VoteExpiredDay1,
    VoteExpiredDay3,
    VoteExpiredDay7,
  }
}

type VoteOption struct {
  Text string `json:"text"`
}

// VoteState starts with two empty options. Filling the last option appends a
// new one up to four; clearing an option removes it while more than two are
// left.
type VoteState struct {
  mu       sync.Mutex
  Options  *flow.StateFlow[[]VoteOption]
  Expired  *flow.StateFlow[VoteExpired]
  Multiple *flow.StateFlow[bool]
}

func NewVoteState() *VoteState {
  return &VoteState{
    Options:  flow.NewStateFlow(make([]VoteOption, config.VOTE_OPTIONS_MIN)),
    Expired:  flow.NewStateFlow(VoteExpiredDay1),
    Multiple: flow.NewStateFlow(false),
  }
}

func (s *VoteState) SetMultiple(value bool) {
  s.Multiple.Set(value)
}

func (s *VoteState) SetExpired(value VoteExpired) {
  s.Expired.Set(value)
}

func (s *VoteState) SetOption(value string, index int) {
  s.mu.Lock()
  defer s.mu.Unlock()
  options := append([]VoteOption{}, s.Options.Value()...)
  if index < 0 || index >= len(options) {
    return
  }
  options[index].Text = value
  if index == len(options)-1 && len(options) < config.VOTE_OPTIONS_MAX && value != "" {
    options = append(options, VoteOption{})
  } else if value == "" && len(options) > config.VOTE_OPTIONS_MIN {
    options = append(options[:index], options[index+1:]...)
  }
  s.Options.Set(options)
}

func (s *VoteState) Texts() []string {
  options := s.Options.Value()
  texts := make([]string, len(options))
  for i, option := range options {
    texts[i] = option.Text
  }
  return texts
}

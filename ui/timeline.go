package ui

import (
  "fmt"

  "twiderex.local/twiderex/models"
)

type Timeline interface {
  Key() string
  ContentType() string
}

type StatusTimeline interface {
  Timeline
  Base() *StatusBase
  ResolveLink(href string) ResolvedLink
}

// StatusWithExtra is a status optionally decorated with a poll, media or a
// card. Plain statuses are their own inner status.
type StatusWithExtra interface {
  Timeline
  Inner() StatusTimeline
}

type Gap struct {
  MaxID   string `json:"max_id"`
  SinceID string `json:"since_id"`
  Loading bool   `json:"loading"`
}

func (g *Gap) Key() string {
  return fmt.Sprintf("%v-%v", g.MaxID, g.SinceID)
}

func (g *Gap) ContentType() string {
  return "gap"
}

type StatusWithPoll struct {
  Status StatusTimeline `json:"status"`
  Poll   models.Poll    `json:"poll"`
}

func (s *StatusWithPoll) Key() string           { return s.Status.Key() }
func (s *StatusWithPoll) ContentType() string   { return s.Status.ContentType() + "-poll" }
func (s *StatusWithPoll) Inner() StatusTimeline { return s.Status }

type StatusWithMedia struct {
  Status StatusTimeline `json:"status"`
  Media  []Media        `json:"media"`
}

func (s *StatusWithMedia) Key() string           { return s.Status.Key() }
func (s *StatusWithMedia) ContentType() string   { return s.Status.ContentType() + "-media" }
func (s *StatusWithMedia) Inner() StatusTimeline { return s.Status }

type StatusWithCard struct {
  Status StatusTimeline `json:"status"`
  Card   models.Card    `json:"card"`
}

func (s *StatusWithCard) Key() string           { return s.Status.Key() }
func (s *StatusWithCard) ContentType() string   { return s.Status.ContentType() + "-card" }
func (s *StatusWithCard) Inner() StatusTimeline { return s.Status }

type RetweetStatus struct {
  Status  StatusWithExtra `json:"status"`
  Retweet StatusWithExtra `json:"retweet"`
}

func (s *RetweetStatus) Key() string { return s.Status.Key() }

func (s *RetweetStatus) ContentType() string {
  return "retweet-status-" + s.Retweet.ContentType()
}

type StatusWithQuote struct {
  Status StatusWithExtra `json:"status"`
  Quote  StatusWithExtra `json:"quote"`
}

func (s *StatusWithQuote) Key() string { return s.Status.Key() }

func (s *StatusWithQuote) ContentType() string {
  return "status-quote-" + s.Quote.ContentType()
}

type StatusWithRetweetAndQuote struct {
  Status  StatusWithExtra `json:"status"`
  Retweet StatusWithExtra `json:"retweet"`
  Quote   StatusWithExtra `json:"quote"`
}

func (s *StatusWithRetweetAndQuote) Key() string { return s.Status.Key() }

func (s *StatusWithRetweetAndQuote) ContentType() string {
  return "status-retweet-quote-" + s.Quote.ContentType()
}

type Follow struct {
  User User `json:"user"`
}

func (f *Follow) Key() string {
  return models.MicroBlogKey{
    ID:   f.User.UserKey.ID + "-follow",
    Host: f.User.UserKey.Host,
  }.String()
}

func (f *Follow) ContentType() string {
  return "follow"
}

type FollowRequest struct {
  User User `json:"user"`
}

func (f *FollowRequest) Key() string {
  return models.MicroBlogKey{
    ID:   f.User.UserKey.ID + "-follow-request",
    Host: f.User.UserKey.Host,
  }.String()
}

func (f *FollowRequest) ContentType() string {
  return "follow-request"
}

// StatusOf returns the innermost status of an item, or nil for gaps and
// follow events.
func StatusOf(item Timeline) StatusTimeline {
  switch v := item.(type) {
  case StatusWithExtra:
    return v.Inner()
  case *RetweetStatus:
    return v.Status.Inner()
  case *StatusWithQuote:
    return v.Status.Inner()
  case *StatusWithRetweetAndQuote:
    return v.Status.Inner()
  }
  return nil
}

package ui

import (
  "twiderex.local/twiderex/models"
)

type Media struct {
  BelongToKey models.MicroBlogKey `json:"belong_to_key"`
  Url         string              `json:"url"`
  MediaUrl    string              `json:"media_url"`
  PreviewUrl  string              `json:"preview_url"`
  PageUrl     string              `json:"page_url,omitempty"`
  AltText     string              `json:"alt_text,omitempty"`
  Type        models.MediaType    `json:"type"`
  Width       int                 `json:"width"`
  Height      int                 `json:"height"`
  Order       int                 `json:"order"`
}

type MediaInsert struct {
  FilePath string           `json:"file_path"`
  Type     models.MediaType `json:"type"`
  Mime     string           `json:"mime"`
  Size     int64            `json:"size"`
}

type Geo struct {
  Name      string   `json:"name"`
  Latitude  *float64 `json:"latitude,omitempty"`
  Longitude *float64 `json:"longitude,omitempty"`
}

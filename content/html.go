package content

import (
  "strings"

  "github.com/PuerkitoBio/goquery"
)

func HtmlToText(html string) string {
  if !strings.Contains(html, "<") {
    return html
  }
  doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
  if err != nil {
    return html
  }
  doc.Find("br").ReplaceWithHtml("\n")
  paragraphs := doc.Find("p")
  if paragraphs.Length() == 0 {
    return strings.TrimSpace(doc.Text())
  }
  items := make([]string, 0, paragraphs.Length())
  paragraphs.Each(func(i int, s *goquery.Selection) {
    items = append(items, s.Text())
  })
  return strings.TrimSpace(strings.Join(items, "\n\n"))
}

func HtmlLinks(html string) map[string]string {
  links := map[string]string{}
  doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
  if err != nil {
    return links
  }
  doc.Find("a").Each(func(i int, s *goquery.Selection) {
    if href, ok := s.Attr("href"); ok {
      links[strings.TrimSpace(s.Text())] = href
    }
  })
  return links
}

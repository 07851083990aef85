package actions

import (
  "fmt"
  "io"
  "os"

  "github.com/h2non/filetype"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/ui"
)

// DetectMediaInsert sniffs the file header to tell images, gifs and videos
// apart.
func DetectMediaInsert(path string) (insert ui.MediaInsert, err error) {
  f, err := os.Open(path)
  if err != nil {
    return
  }
  defer f.Close()
  stat, err := f.Stat()
  if err != nil {
    return
  }
  head := make([]byte, 261)
  n, err := io.ReadFull(f, head)
  if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
    return
  }
  err = nil
  kind, err := filetype.Match(head[:n])
  if err != nil {
    return
  }
  insert = ui.MediaInsert{
    FilePath: path,
    Mime:     kind.MIME.Value,
    Size:     stat.Size(),
  }
  switch {
  case kind.MIME.Subtype == "gif":
    insert.Type = models.MediaTypeAnimatedGif
  case filetype.IsImage(head[:n]):
    insert.Type = models.MediaTypePhoto
  case filetype.IsVideo(head[:n]):
    insert.Type = models.MediaTypeVideo
  case filetype.IsAudio(head[:n]):
    insert.Type = models.MediaTypeAudio
  default:
    err = fmt.Errorf("unsupported media: %s", path)
  }
  return
}

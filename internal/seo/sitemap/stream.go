package sitemap

import (
	"encoding/xml"
	"io"
)

// DefaultStreamBatch is the number of url elements encoded between
// flushes when streaming.
const DefaultStreamBatch = 1000

// StreamRender writes entries as a urlset document to w without
// buffering the whole file, flushing every batchSize elements. Large
// paginated sitemaps go through here so a 50,000-URL file never
// materializes as one byte slice.
func (g *Generator) StreamRender(w io.Writer, entries []Entry, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultStreamBatch
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<urlset xmlns="`+xmlnsSitemap+`">`+"\n"); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("  ", "  ")
	for i, e := range entries {
		err := enc.Encode(xmlURL{
			Loc:        e.Loc,
			LastMod:    formatLastMod(e.LastMod),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   formatPriority(e.Priority),
		})
		if err != nil {
			return err
		}
		if (i+1)%batchSize == 0 {
			if err := enc.Flush(); err != nil {
				return err
			}
		}
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</urlset>\n")
	return err
}

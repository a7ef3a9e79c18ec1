package reporters

import (
	"io"
	"os"
)

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/types/digraph"
)

type File struct {
	config     *config.Config
	fmtr       *digraph.Formatter
	patterns   io.WriteCloser
	embeddings io.WriteCloser
}

func NewFile(c *config.Config, fmtr *digraph.Formatter, patternsFilename, embeddingsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	embeddings, err := os.Create(c.OutputFile(embeddingsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:     c,
		fmtr:       fmtr,
		patterns:   patterns,
		embeddings: embeddings,
	}
	return r, nil
}

func (r *File) Report(n *digraph.Node) error {
	err := r.fmtr.FormatPattern(r.patterns, n)
	if err != nil {
		return err
	}
	return r.fmtr.FormatEmbeddings(r.embeddings, n)
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	return r.embeddings.Close()
}

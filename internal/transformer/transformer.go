package transformer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/moinwiki/nowiki"
	"github.com/moinwiki/nowiki/markup"
)

type TransformOptions struct {
	// The mode for the writer instance
	WriterMode nowiki.WriteMode
	// If true, no backup will be created when overwriting existing output
	NoBackup bool
}

func (t *TransformOptions) Pretty() string {
	return fmt.Sprintf("mode=%s backup=%s",
		writerModeToString(t.WriterMode),
		boolToText(!t.NoBackup))
}

func writerModeToString(mode nowiki.WriteMode) string {
	switch mode {
	case nowiki.ModePretty:
		return "Pretty"
	case nowiki.ModeCompact:
		return "Compact"
	default:
		return fmt.Sprintf("Mode(%d)", mode)
	}
}

func boolToText(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Transformer runs the full pipeline over one wiki source: parse the page,
// expand its raw blocks, serialize the expanded tree.
type Transformer struct {
	parser   *markup.Wiki
	expander *nowiki.Expander
	writer   *nowiki.Writer

	opts TransformOptions
}

// NewTransformer creates a Transformer with the specified [TransformOptions]
func NewTransformer(opts TransformOptions) *Transformer {
	return &Transformer{
		parser:   markup.NewWiki(),
		expander: nowiki.NewExpander(markup.Default()),
		writer:   nowiki.NewWriter(opts.WriterMode),
		opts:     opts,
	}
}

type WikiSource struct {
	Content  io.Reader
	Metadata nowiki.MetaData
}

// Transform expands the source document and writes the serialized tree next
// to the source file. Returns the output path.
func (t *Transformer) Transform(input WikiSource) (string, error) {
	if input.Metadata.Source == "" {
		return "", fmt.Errorf("source metadata is required for transformation")
	}

	doc, err := t.expand(input)
	if err != nil {
		return "", err
	}

	outPath := nowiki.ResolveOutputPath(input.Metadata.Source)
	if !t.opts.NoBackup {
		if _, err := nowiki.NewBackupManager(outPath).CreateBackup(); err != nil {
			return "", fmt.Errorf("backup error: %w", err)
		}
	}

	if err := t.writer.WriteToPath(doc, outPath); err != nil {
		return "", fmt.Errorf("write error: %w", err)
	}

	return outPath, nil
}

// TransformTo expands the source document and writes the serialized tree to
// out, leaving the filesystem untouched.
func (t *Transformer) TransformTo(input WikiSource, out io.Writer) error {
	doc, err := t.expand(input)
	if err != nil {
		return err
	}
	return t.writer.Write(doc, out)
}

func (t *Transformer) expand(input WikiSource) (*nowiki.Document, error) {
	slog.Debug("transforming document", "path", input.Metadata.Source)

	doc, err := t.parser.ParseDocument(input.Content, input.Metadata)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if _, err := t.expander.Expand(doc.Root); err != nil {
		return nil, fmt.Errorf("expand error: %w", err)
	}

	return doc, nil
}

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/recipe/lexer"
	"github.com/mchmarny/cookbook/pkg/recipe/numeric"
)

const (
	frontMatterCategory = "category"
	frontMatterMakes    = "makes"
	frontMatterServes   = "serves"
)

var makesPattern = regexp.MustCompile(`^(\S+)\s+(.+)$`)

// Option is a functional option for Parse.
type Option func(*options)

type options struct {
	id       string
	category string
}

// WithID sets the recipe id, usually derived from the source file name.
// Without it the id is the slugified title.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithCategory sets the category the recipe is filed under. When set, the
// front matter Category is required and must match it.
func WithCategory(category string) Option {
	return func(o *options) {
		o.category = category
	}
}

// Parse builds a Recipe from source text. Parsing the same text twice yields
// equal recipes with the same VersionHash.
func Parse(source string, opts ...Option) (*Recipe, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	p := &parser{tokens: lexer.Tokenize(source)}
	doc, err := p.parse()
	if err != nil {
		return nil, err
	}
	return newRecipe(doc, source, o)
}

// document is the raw parse tree before front matter validation.
type document struct {
	title       string
	description string
	frontMatter map[string]string
	steps       []Step
	footer      string
}

// parser is a forward-only cursor over the token stream.
type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) skipBlanks() {
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != lexer.KindBlank {
			return
		}
		p.pos++
	}
}

func (p *parser) next(kind lexer.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Line
}

func (p *parser) parse() (*document, error) {
	doc := &document{frontMatter: make(map[string]string)}

	title, err := p.parseTitle()
	if err != nil {
		return nil, err
	}
	doc.title = title

	p.skipBlanks()
	if p.next(lexer.KindProse) {
		doc.description = strings.TrimSpace(p.advance().Content)
	}

	if err := p.parseFrontMatter(doc.frontMatter); err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == lexer.KindDivider {
			break
		}
		if tok.Kind != lexer.KindStepHeader {
			p.advance()
			continue
		}
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		doc.steps = append(doc.steps, step)
	}

	if p.next(lexer.KindDivider) {
		p.advance()
		doc.footer = p.parseFooter()
	}

	return doc, nil
}

func (p *parser) parseTitle() (string, error) {
	p.skipBlanks()
	tok, ok := p.peek()
	if !ok {
		return "", syntaxError(p.lastLine(), "", "First line must be a level-one header (# Title)")
	}
	if tok.Kind != lexer.KindTitle {
		return "", syntaxError(tok.Line, tok.Text, "First line must be a level-one header (# Title)")
	}
	p.advance()

	title := strings.TrimSpace(tok.Content)
	if title == "" {
		return "", syntaxError(tok.Line, tok.Text, "Title cannot be blank")
	}
	return title, nil
}

func (p *parser) parseFrontMatter(fm map[string]string) error {
	for {
		p.skipBlanks()
		tok, ok := p.peek()
		if !ok || tok.Kind != lexer.KindFrontMatter {
			return nil
		}
		p.advance()

		key := strings.ToLower(tok.Key)
		if _, dup := fm[key]; dup {
			return syntaxError(tok.Line, tok.Text, fmt.Sprintf("Duplicate front matter key %q", tok.Key))
		}
		fm[key] = strings.TrimSpace(tok.Content)
	}
}

func (p *parser) parseStep() (Step, error) {
	header := p.advance()
	step := Step{TLDR: strings.TrimSpace(header.Content)}
	if step.TLDR == "" {
		return Step{}, syntaxError(header.Line, header.Text, "Step header cannot be blank")
	}

	var prose []string
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case lexer.KindIngredient:
			item, err := ParseItem(tok.Content)
			if err != nil {
				return Step{}, atLine(tok, err)
			}
			step.Items = append(step.Items, item)
		case lexer.KindProse:
			prose = append(prose, strings.TrimSpace(tok.Content))
		case lexer.KindBlank:
		default:
			return finishStep(header, step, prose)
		}
		p.advance()
	}
	return finishStep(header, step, prose)
}

func finishStep(header lexer.Token, step Step, prose []string) (Step, error) {
	step.Instructions = strings.Join(prose, "\n\n")
	if len(step.Items) == 0 && strings.TrimSpace(step.Instructions) == "" {
		return Step{}, syntaxError(header.Line, header.Text,
			fmt.Sprintf("Step %q has no ingredients or instructions", step.TLDR))
	}
	return step, nil
}

// parseFooter consumes the rest of the input. Blank lines separate paragraphs;
// runs of blanks collapse and leading or trailing blanks are dropped.
func (p *parser) parseFooter() string {
	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		p.advance()
		if tok.Kind == lexer.KindBlank {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(tok.Text, " \t"))
	}
	flush()
	return strings.Join(paragraphs, "\n\n")
}

func newRecipe(doc *document, source string, o *options) (*Recipe, error) {
	if len(doc.steps) == 0 {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeSyntax,
			fmt.Sprintf("Recipe %q must have at least one step (## Step)", doc.title),
			map[string]any{"title": doc.title})
	}

	category, ok := doc.frontMatter[frontMatterCategory]
	if o.category != "" {
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeSemantic,
				fmt.Sprintf("Recipe %q is missing required front matter: Category", doc.title),
				map[string]any{"title": doc.title, "expected": o.category})
		}
		if !strings.EqualFold(category, o.category) {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeSemantic,
				fmt.Sprintf("Recipe %q has Category %q but is filed under %q", doc.title, category, o.category),
				map[string]any{"title": doc.title, "category": category, "expected": o.category})
		}
		category = o.category
	}

	r := &Recipe{
		ID:          o.id,
		Title:       doc.title,
		Description: doc.description,
		Category:    category,
		Steps:       doc.steps,
		Footer:      doc.footer,
		VersionHash: VersionHash(source),
	}
	if r.ID == "" {
		r.ID = Slugify(doc.title)
	}

	if raw, ok := doc.frontMatter[frontMatterMakes]; ok {
		makes, err := parseMakes(raw)
		if err != nil {
			return nil, err
		}
		r.Makes = makes
	}

	if raw, ok := doc.frontMatter[frontMatterServes]; ok {
		v, ok := numeric.QuantityValue(raw)
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeNumeric,
				fmt.Sprintf("Serves must be a number, got %q", raw),
				map[string]any{"serves": raw})
		}
		serves := int(v)
		r.Serves = &serves
	}

	return r, nil
}

func parseMakes(raw string) (*Makes, error) {
	m := makesPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, makesUnitError(raw)
	}
	qty, ok := numeric.QuantityValue(m[1])
	if !ok {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeNumeric,
			fmt.Sprintf("Makes must start with a number, got %q", raw),
			map[string]any{"makes": raw})
	}
	noun := strings.TrimSpace(m[2])
	if _, err := numeric.Parse(noun); err == nil {
		return nil, makesUnitError(raw)
	}
	return &Makes{Quantity: qty, UnitNoun: noun}, nil
}

func makesUnitError(raw string) error {
	return cberrors.NewWithContext(cberrors.ErrCodeSemantic,
		fmt.Sprintf("Makes requires a unit noun after the number (e.g., \"Makes: 12 pancakes\"), got %q", raw),
		map[string]any{"makes": raw})
}

func syntaxError(line int, text, msg string) error {
	return cberrors.NewWithContext(cberrors.ErrCodeSyntax,
		fmt.Sprintf("Line %d: %s", line, msg),
		map[string]any{"line": line, "text": text})
}

// atLine prefixes an item error with the line it came from, keeping its code.
func atLine(tok lexer.Token, err error) error {
	code, msg, cause := cberrors.ErrCodeSyntax, err.Error(), error(nil)
	var se *cberrors.StructuredError
	if errors.As(err, &se) {
		code, msg, cause = se.Code, se.Message, se.Cause
	}
	return cberrors.WrapWithContext(code, fmt.Sprintf("Line %d: %s", tok.Line, msg), cause,
		map[string]any{"line": tok.Line, "text": tok.Text})
}

package propfile

import (
	"github.com/eykd/dslint-go/internal/domain"
)

// Parser splits documents into markup and the prop bag carried in their
// frontmatter.
type Parser struct{}

// ParseDocument returns the markup body of content and the props declared in
// its frontmatter. Documents without frontmatter have an empty prop bag.
func (Parser) ParseDocument(content string) (string, domain.PropBag, error) {
	fm, body, err := Split(content)
	if err != nil {
		return "", nil, err
	}
	if fm == "" {
		return body, domain.PropBag{}, nil
	}
	props, err := ParseProps(fm)
	if err != nil {
		return "", nil, err
	}
	return body, props, nil
}

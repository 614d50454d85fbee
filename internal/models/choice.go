package models

import "strconv"

// Product is a supported product a knowledge-base article can be relevant to.
type Product struct {
	Slug  string `db:"slug" json:"slug"`
	Title string `db:"title" json:"title"`
}

// Topic groups knowledge-base articles.
type Topic struct {
	Slug  string `db:"slug" json:"slug"`
	Title string `db:"title" json:"title"`
}

// Forum is a discussion forum threads can be searched in.
type Forum struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ChoiceSet bundles the database-backed choice lists of the search form.
type ChoiceSet struct {
	Products []Product `json:"products"`
	Topics   []Topic   `json:"topics"`
	Forums   []Forum   `json:"forums"`
}

// HasProduct reports whether slug names a known product.
func (s *ChoiceSet) HasProduct(slug string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Products {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

// HasTopic reports whether slug names a known topic.
func (s *ChoiceSet) HasTopic(slug string) bool {
	if s == nil {
		return false
	}
	for _, t := range s.Topics {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

// ForumValue renders a forum id the way it is submitted by the form.
func (f Forum) ForumValue() string {
	return strconv.FormatInt(f.ID, 10)
}

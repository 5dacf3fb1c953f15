package store

import (
	"strings"

	"storefront/internal/domain"
)

// CategorySlice holds the flat category list plus the client-side pagination
// cursor. The two-level tree is derived on read, never persisted.
type CategorySlice struct {
	state
	items   []domain.Category
	page    int
	hasMore bool
}

// SetCategories replaces the whole list and resets pagination to the given
// cursor.
func (s *CategorySlice) SetCategories(items []domain.Category, page int, hasMore bool) {
	s.mu.Lock()
	s.items = append([]domain.Category(nil), items...)
	s.page = page
	s.hasMore = hasMore
	s.mu.Unlock()
	s.signal()
}

// AddCategories appends a page, de-duplicating by id and preserving
// first-seen order.
func (s *CategorySlice) AddCategories(items []domain.Category, page int, hasMore bool) {
	s.mu.Lock()
	seen := make(map[string]struct{}, len(s.items))
	for _, c := range s.items {
		seen[c.ID] = struct{}{}
	}
	for _, c := range items {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		s.items = append(s.items, c)
	}
	s.page = page
	s.hasMore = hasMore
	s.mu.Unlock()
	s.signal()
}

// Categories returns a snapshot of the flat list.
func (s *CategorySlice) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.items...)
}

// Pagination returns the current page counter and the has-more flag.
func (s *CategorySlice) Pagination() (page int, hasMore bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page, s.hasMore
}

// Roots returns the root categories: every element whose ParentID is nil.
func (s *CategorySlice) Roots() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roots []domain.Category
	for _, c := range s.items {
		if c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	return roots
}

// Search filters the root tree by a case-insensitive substring over all
// localized name fields. An empty term returns all roots unchanged. A root
// that matches keeps all its children; a root that does not match but has
// matching children is kept with only those children. The store's own
// children arrays are never mutated.
func (s *CategorySlice) Search(term string) []domain.Category {
	roots := s.Roots()
	term = strings.TrimSpace(term)
	if term == "" {
		return roots
	}

	var out []domain.Category
	for _, root := range roots {
		if categoryMatches(root, term) {
			out = append(out, root)
			continue
		}
		var matched []domain.Category
		for _, child := range root.Children {
			if categoryMatches(child, term) {
				matched = append(matched, child)
			}
		}
		if len(matched) > 0 {
			pruned := root
			pruned.Children = matched
			out = append(out, pruned)
		}
	}
	return out
}

func categoryMatches(c domain.Category, term string) bool {
	t := strings.ToLower(term)
	for _, name := range []string{c.Name, c.NameEn, c.NameAr} {
		if name != "" && strings.Contains(strings.ToLower(name), t) {
			return true
		}
	}
	return false
}

package registry

import (
	"fmt"
	"sort"
)

// Catalog is the set of sections offered in one semester. All sections in
// a catalog share the catalog's semester; the Catalog owns its backing
// container and only ever hands out copies.
type Catalog struct {
	Semester Semester
	sections map[SectionKey]*Section
}

// NewCatalog returns an empty catalog for the given semester.
func NewCatalog(semester Semester) *Catalog {
	return &Catalog{
		Semester: semester,
		sections: make(map[SectionKey]*Section),
	}
}

// Sections returns a copy of the catalog's sections, ordered by CRN.
func (c *Catalog) Sections() []*Section {
	sections := make([]*Section, 0, len(c.sections))
	for _, s := range c.sections {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].CRN < sections[j].CRN })
	return sections
}

// Size returns the number of sections in the catalog.
func (c *Catalog) Size() int {
	return len(c.sections)
}

// Add puts a section into the catalog. It is an error if the section's
// semester differs from the catalog's. Returns false if the section was
// already present.
func (c *Catalog) Add(section *Section) (bool, error) {
	if section.Semester != c.Semester {
		return false, fmt.Errorf("section semester %s is different from the catalog's semester %s",
			section.Semester, c.Semester)
	}
	if _, ok := c.sections[section.Key()]; ok {
		return false, nil
	}
	c.sections[section.Key()] = section
	return true, nil
}

// Remove takes a section out of the catalog. Returns false if the section
// was not present.
func (c *Catalog) Remove(section *Section) bool {
	if _, ok := c.sections[section.Key()]; !ok {
		return false
	}
	delete(c.sections, section.Key())
	return true
}

// Contains reports whether the section is in the catalog, by section
// identity.
func (c *Catalog) Contains(section *Section) bool {
	_, ok := c.sections[section.Key()]
	return ok
}

// SectionByCRN returns the section with the given course registration
// number, or nil if no section in the catalog has that CRN.
func (c *Catalog) SectionByCRN(crn int) *Section {
	for _, s := range c.sections {
		if s.CRN == crn {
			return s
		}
	}
	return nil
}

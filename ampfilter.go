// Package ampfilter filters pre-rendered documentation pages down to a single
// format variant (websites, stories, ads or email). It removes markup tagged
// for other formats, rewrites documentation links to carry the active format
// and fixes up the format toggle in the page header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package ampfilter

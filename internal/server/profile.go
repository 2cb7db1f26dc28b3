package server

import (
	"portfoliochat/internal/config"
	"portfoliochat/internal/responder"
)

// applyProfileConfig overlays the non-empty fields of pc onto p.
func applyProfileConfig(p responder.Profile, pc *config.ProfileConfig) responder.Profile {
	if pc == nil {
		return p
	}

	override(&p.Name, pc.Name)
	override(&p.Role, pc.Role)
	override(&p.Company, pc.Company)
	override(&p.Education.School, pc.Education.School)
	override(&p.Education.Graduation, pc.Education.Graduation)
	if len(pc.Focus) > 0 {
		p.Focus = pc.Focus
	}

	override(&p.Links.DevLibrary, pc.Links.DevLibrary)
	override(&p.Links.GitHub, pc.Links.GitHub)
	if len(pc.Links.Blogs) > 0 {
		p.Links.Blogs = pc.Links.Blogs
	}
	override(&p.Links.Projects.CO2, pc.Links.Projects.CO2)
	override(&p.Links.Projects.Kanban, pc.Links.Projects.Kanban)
	override(&p.Links.Projects.KanbanLive, pc.Links.Projects.KanbanLive)

	return p
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

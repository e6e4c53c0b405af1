package role

import (
	"fmt"

	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
)

// NavItem is a sidebar link, Path is relative to the role's base path
type NavItem struct {
	Label string
	Icon  string
	Path  string
}

// Chrome stores the sidebar and navbar configuration of a role
type Chrome struct {
	Role     common.Role
	Label    string
	Theme    string
	BasePath string
	Nav      []NavItem
}

var chromes = map[common.Role]Chrome{
	common.Admin: {
		Role:     common.Admin,
		Label:    "Administrador",
		Theme:    "indigo",
		BasePath: common.Admin.BasePath(),
		Nav: []NavItem{
			{Label: "Painel", Icon: "layout", Path: ""},
			{Label: "Imóveis", Icon: "home", Path: "/properties"},
			{Label: "Relatórios", Icon: "bar-chart", Path: "/reports"},
			{Label: "Perfil", Icon: "user", Path: "/profile"},
		},
	},
	common.Subadmin: {
		Role:     common.Subadmin,
		Label:    "Subadministrador",
		Theme:    "emerald",
		BasePath: common.Subadmin.BasePath(),
		Nav: []NavItem{
			{Label: "Painel", Icon: "layout", Path: ""},
			{Label: "Imóveis", Icon: "home", Path: "/properties"},
			{Label: "Relatórios", Icon: "bar-chart", Path: "/reports"},
			{Label: "Perfil", Icon: "user", Path: "/profile"},
		},
	},
	common.User: {
		Role:     common.User,
		Label:    "Cliente",
		Theme:    "sky",
		BasePath: common.User.BasePath(),
		Nav: []NavItem{
			{Label: "Início", Icon: "layout", Path: ""},
			{Label: "Imóveis", Icon: "home", Path: "/properties"},
			{Label: "Perfil", Icon: "user", Path: "/profile"},
		},
	},
}

// ChromeFor returns the chrome of the given role
func ChromeFor(r common.Role) (Chrome, error) {
	chrome, ok := chromes[r]
	if !ok {
		return Chrome{}, errors.Wrap(common.ErrUnknownRole, fmt.Sprintf("role %s has no chrome", r))
	}
	chrome.Nav = append([]NavItem{}, chrome.Nav...)
	return chrome, nil
}

// HasPage reports whether the role's sidebar links to the given relative path
func (c Chrome) HasPage(path string) bool {
	for _, item := range c.Nav {
		if item.Path == path {
			return true
		}
	}
	return false
}

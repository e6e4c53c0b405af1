package frontend

import (
	"strings"

	"github.com/matrizimoveis/matriz_portal/config/role"
	authCommon "github.com/matrizimoveis/matriz_portal/utils/auth/common"
)

// layoutFor builds the sidebar and navbar of a role, flagging the link of currentPath as active
func layoutFor(claims *authCommon.SessionClaims, currentPath string) (layoutDataModel, error) {
	chrome, err := role.ChromeFor(claims.Role)
	if err != nil {
		return layoutDataModel{}, err
	}

	links := make([]navLinkDataModel, 0, len(chrome.Nav))
	for _, item := range chrome.Nav {
		href := chrome.BasePath + item.Path
		active := currentPath == href
		if item.Path != "" && strings.HasPrefix(currentPath, href+"/") {
			active = true
		}
		links = append(links, navLinkDataModel{
			Label:  item.Label,
			Icon:   item.Icon,
			Href:   href,
			Active: active,
		})
	}

	return layoutDataModel{
		RoleLabel: chrome.Label,
		Theme:     chrome.Theme,
		BasePath:  chrome.BasePath,
		Email:     claims.Email,
		Nav:       links,
	}, nil
}

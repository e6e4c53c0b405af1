package frontend

import (
	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/routers/common"
)

type pageDataModel struct {
	Cfg        *config.AppConfig
	Toast      *common.Toast
	Redirect   *redirectDataModel
	Components map[string]interface{}
	Data       interface{}
}

// redirectDataModel makes the page navigate to URL once the delay has passed
type redirectDataModel struct {
	URL     string
	DelayMs int
	Seconds int
}

func newRedirect(url string, delayMs int) *redirectDataModel {
	if delayMs < 0 {
		delayMs = 0
	}
	return &redirectDataModel{
		URL:     url,
		DelayMs: delayMs,
		Seconds: (delayMs + 999) / 1000,
	}
}

type navLinkDataModel struct {
	Label  string
	Icon   string
	Href   string
	Active bool
}

type layoutDataModel struct {
	RoleLabel string
	Theme     string
	BasePath  string
	Email     string
	Nav       []navLinkDataModel
}

type loginDataModel struct {
	Email string
}

type profilePageDataModel struct {
	Profile       entities.Profile
	Form          entities.ProfileUpdate
	State         entities.ProfileEditState
	BasePath      string
	EditQuery     string
	PasswordQuery string
	CurrentQuery  string
}

type reportSelectorOption struct {
	Value    string
	Label    string
	Selected bool
}

type reportDataModel struct {
	Report    *entities.Report
	ChartHTML string
	Periods   []reportSelectorOption
	Types     []reportSelectorOption
	BasePath  string
}

type propertiesDataModel struct {
	Properties []entities.Property
	BasePath   string
}

type propertyDataModel struct {
	Property entities.Property
	BasePath string
}

type statusDataModel struct {
	Code     int
	Title    string
	Message  string
	BackHref string
}

package entities

import "github.com/matrizimoveis/matriz_portal/utils/auth/common"

// StatCard is a KPI card linking to the page with the details
type StatCard struct {
	Title       string
	Value       string
	Description string
	Icon        string
	Href        string
}

// ActivityItem is a row of the activity or task list
type ActivityItem struct {
	Title       string
	Description string
	Time        string
	Icon        string
	Href        string
}

// PanelRow is a row of the secondary panel
type PanelRow struct {
	Title    string
	Subtitle string
	Value    string
	Progress int
}

// SecondaryPanel is the third section of a dashboard: top performers,
// team performance or appointments depending on the role
type SecondaryPanel struct {
	Title string
	Rows  []PanelRow
}

// QuickAction is a link of the quick actions grid
type QuickAction struct {
	Title       string
	Description string
	Icon        string
	Href        string
}

// Dashboard is the landing page of a role
type Dashboard struct {
	Role          common.Role
	Greeting      string
	Stats         []StatCard
	ActivityTitle string
	Activity      []ActivityItem
	Secondary     SecondaryPanel
	QuickActions  []QuickAction
}

package mock

import (
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
)

func adminDashboard() entities.Dashboard {
	return entities.Dashboard{
		Role:     common.Admin,
		Greeting: "Visão geral da imobiliária",
		Stats: []entities.StatCard{
			{Title: "Imóveis ativos", Value: "248", Description: "+12 este mês", Icon: "home", Href: "/admin/properties"},
			{Title: "Corretores", Value: "32", Description: "4 equipes", Icon: "users", Href: "/admin/reports?type=performance"},
			{Title: "Vendas no mês", Value: "R$ 4,8 mi", Description: "+18% vs. mês anterior", Icon: "trending-up", Href: "/admin/reports?type=sales"},
			{Title: "Novos clientes", Value: "87", Description: "+9% vs. mês anterior", Icon: "user-plus", Href: "/admin/reports?type=clients"},
		},
		ActivityTitle: "Atividades recentes",
		Activity: []entities.ActivityItem{
			{Title: "Nova venda registrada", Description: "Apartamento no Batel vendido por Carlos Lima", Time: "há 15 min", Icon: "check-circle", Href: "/admin/properties/apto-batel-301"},
			{Title: "Imóvel cadastrado", Description: "Casa em Santa Felicidade adicionada ao portfólio", Time: "há 1 h", Icon: "home", Href: "/admin/properties/casa-santa-felicidade"},
			{Title: "Contrato de locação assinado", Description: "Sala comercial no Centro", Time: "há 3 h", Icon: "file-text", Href: "/admin/properties/sala-centro-1204"},
			{Title: "Novo corretor", Description: "Juliana Alves entrou na equipe Norte", Time: "ontem", Icon: "user-plus", Href: "/admin/reports?type=performance"},
			{Title: "Visita agendada", Description: "Cobertura no Ecoville, sábado 10h", Time: "ontem", Icon: "calendar", Href: "/admin/properties/cobertura-ecoville"},
		},
		Secondary: entities.SecondaryPanel{
			Title: "Melhores corretores",
			Rows: []entities.PanelRow{
				{Title: "Carlos Lima", Subtitle: "12 vendas", Value: "R$ 1,2 mi", Progress: 92},
				{Title: "Fernanda Rocha", Subtitle: "10 vendas", Value: "R$ 980 mil", Progress: 81},
				{Title: "Rafael Mendes", Subtitle: "8 vendas", Value: "R$ 760 mil", Progress: 68},
				{Title: "Juliana Alves", Subtitle: "6 vendas", Value: "R$ 540 mil", Progress: 49},
			},
		},
		QuickActions: []entities.QuickAction{
			{Title: "Imóveis", Description: "Gerenciar o portfólio", Icon: "home", Href: "/admin/properties"},
			{Title: "Relatórios", Description: "Vendas, locações e desempenho", Icon: "bar-chart", Href: "/admin/reports"},
			{Title: "Meu perfil", Description: "Dados e senha", Icon: "user", Href: "/admin/profile"},
			{Title: "Serviços", Description: "Página pública", Icon: "globe", Href: "/services"},
		},
	}
}

func subadminDashboard() entities.Dashboard {
	return entities.Dashboard{
		Role:     common.Subadmin,
		Greeting: "Painel da equipe Norte",
		Stats: []entities.StatCard{
			{Title: "Imóveis da equipe", Value: "64", Description: "+5 esta semana", Icon: "home", Href: "/subadmin/properties"},
			{Title: "Corretores", Value: "8", Description: "2 em treinamento", Icon: "users", Href: "/subadmin/reports?type=performance"},
			{Title: "Vendas no mês", Value: "R$ 1,3 mi", Description: "Meta: R$ 1,5 mi", Icon: "trending-up", Href: "/subadmin/reports?type=sales"},
			{Title: "Tarefas abertas", Value: "14", Description: "3 vencem hoje", Icon: "check-square", Href: "/subadmin"},
		},
		ActivityTitle: "Tarefas da equipe",
		Activity: []entities.ActivityItem{
			{Title: "Revisar contrato", Description: "Apartamento no Batel aguarda revisão", Time: "hoje", Icon: "file-text", Href: "/subadmin/properties/apto-batel-301"},
			{Title: "Aprovar fotos", Description: "Casa em Santa Felicidade", Time: "hoje", Icon: "image", Href: "/subadmin/properties/casa-santa-felicidade"},
			{Title: "Reunião de equipe", Description: "Fechamento semanal com os corretores", Time: "amanhã 9h", Icon: "calendar", Href: "/subadmin"},
			{Title: "Atualizar preços", Description: "Salas comerciais do Centro", Time: "sexta", Icon: "tag", Href: "/subadmin/properties/sala-centro-1204"},
		},
		Secondary: entities.SecondaryPanel{
			Title: "Desempenho da equipe",
			Rows: []entities.PanelRow{
				{Title: "Rafael Mendes", Subtitle: "Meta mensal", Value: "8/10", Progress: 80},
				{Title: "Juliana Alves", Subtitle: "Meta mensal", Value: "6/10", Progress: 60},
				{Title: "Bruno Costa", Subtitle: "Meta mensal", Value: "5/10", Progress: 50},
				{Title: "Patrícia Nunes", Subtitle: "Meta mensal", Value: "3/10", Progress: 30},
			},
		},
		QuickActions: []entities.QuickAction{
			{Title: "Imóveis", Description: "Portfólio da equipe", Icon: "home", Href: "/subadmin/properties"},
			{Title: "Relatórios", Description: "Resultados da equipe", Icon: "bar-chart", Href: "/subadmin/reports"},
			{Title: "Meu perfil", Description: "Dados e senha", Icon: "user", Href: "/subadmin/profile"},
		},
	}
}

func userDashboard() entities.Dashboard {
	return entities.Dashboard{
		Role:     common.User,
		Greeting: "Bem-vindo de volta",
		Stats: []entities.StatCard{
			{Title: "Imóveis favoritos", Value: "6", Description: "2 com preço reduzido", Icon: "heart", Href: "/dashboard/properties"},
			{Title: "Visitas agendadas", Value: "2", Description: "Próxima: sábado", Icon: "calendar", Href: "/dashboard"},
			{Title: "Propostas", Value: "1", Description: "Em análise", Icon: "file-text", Href: "/dashboard"},
			{Title: "Mensagens", Value: "3", Description: "1 não lida", Icon: "message-circle", Href: "/dashboard/profile"},
		},
		ActivityTitle: "Suas atividades",
		Activity: []entities.ActivityItem{
			{Title: "Proposta enviada", Description: "Apartamento no Batel", Time: "há 2 h", Icon: "send", Href: "/dashboard/properties/apto-batel-301"},
			{Title: "Imóvel favoritado", Description: "Cobertura no Ecoville", Time: "ontem", Icon: "heart", Href: "/dashboard/properties/cobertura-ecoville"},
			{Title: "Visita realizada", Description: "Casa em Santa Felicidade", Time: "3 dias atrás", Icon: "map-pin", Href: "/dashboard/properties/casa-santa-felicidade"},
		},
		Secondary: entities.SecondaryPanel{
			Title: "Próximas visitas",
			Rows: []entities.PanelRow{
				{Title: "Cobertura no Ecoville", Subtitle: "com Fernanda Rocha", Value: "Sáb 10:00"},
				{Title: "Casa no Cabral", Subtitle: "com Carlos Lima", Value: "Ter 15:30"},
			},
		},
		QuickActions: []entities.QuickAction{
			{Title: "Buscar imóveis", Description: "Veja o portfólio", Icon: "search", Href: "/dashboard/properties"},
			{Title: "Meu perfil", Description: "Dados e senha", Icon: "user", Href: "/dashboard/profile"},
			{Title: "Serviços", Description: "Conheça a Matriz", Icon: "globe", Href: "/services"},
		},
	}
}

func seedProfile(role common.Role, email string) entities.Profile {
	switch role {
	case common.Admin:
		return entities.Profile{
			Name:            "Marcos",
			Surname:         "Andrade",
			Email:           email,
			Phone:           "(41) 3333-1000",
			Whatsapp:        "(41) 99999-1000",
			Creci:           "CRECI 12345-J",
			City:            "Curitiba",
			Bio:             "Diretor da Matriz Imóveis há 15 anos.",
			Specialties:     []string{"Gestão", "Alto padrão", "Comercial"},
			PropertiesSold:  320,
			ActiveListings:  248,
			YearsExperience: 15,
			Rating:          4.9,
		}
	case common.Subadmin:
		return entities.Profile{
			Name:            "Fernanda",
			Surname:         "Rocha",
			Email:           email,
			Phone:           "(41) 3333-2000",
			Whatsapp:        "(41) 99999-2000",
			Creci:           "CRECI 54321-F",
			City:            "Curitiba",
			Bio:             "Coordenadora da equipe Norte.",
			Specialties:     []string{"Residencial", "Lançamentos"},
			PropertiesSold:  142,
			ActiveListings:  64,
			YearsExperience: 8,
			Rating:          4.8,
		}
	default:
		return entities.Profile{
			Name:        "Lucas",
			Surname:     "Pereira",
			Email:       email,
			Phone:       "(41) 98888-3000",
			Whatsapp:    "(41) 98888-3000",
			City:        "Curitiba",
			Bio:         "Procurando um apartamento de 3 quartos.",
			Specialties: []string{},
		}
	}
}

func properties() []entities.Property {
	return []entities.Property{
		{
			ID: "apto-batel-301", Title: "Apartamento no Batel", Kind: "Apartamento", Status: "Vendido",
			Address: "Rua Bispo Dom José, 301", City: "Curitiba", Price: "R$ 890.000",
			Area: 110, Bedrooms: 3, Bathrooms: 2, Parking: 2, Broker: "Carlos Lima",
			Description: "Apartamento reformado com varanda gourmet a duas quadras do Parque Barigui.",
			Features:    []string{"Varanda gourmet", "Piscina", "Academia"},
		},
		{
			ID: "casa-santa-felicidade", Title: "Casa em Santa Felicidade", Kind: "Casa", Status: "Disponível",
			Address: "Via Veneto, 1500", City: "Curitiba", Price: "R$ 1.250.000",
			Area: 240, Bedrooms: 4, Bathrooms: 3, Parking: 3, Broker: "Rafael Mendes",
			Description: "Casa em condomínio fechado com quintal amplo e churrasqueira.",
			Features:    []string{"Condomínio fechado", "Churrasqueira", "Quintal"},
		},
		{
			ID: "sala-centro-1204", Title: "Sala comercial no Centro", Kind: "Comercial", Status: "Alugado",
			Address: "Rua XV de Novembro, 1204", City: "Curitiba", Price: "R$ 3.200/mês",
			Area: 45, Bedrooms: 0, Bathrooms: 1, Parking: 1, Broker: "Juliana Alves",
			Description: "Sala pronta para uso em edifício com portaria 24 h.",
			Features:    []string{"Portaria 24 h", "Ar-condicionado"},
		},
		{
			ID: "cobertura-ecoville", Title: "Cobertura no Ecoville", Kind: "Cobertura", Status: "Disponível",
			Address: "Rua Prof. Pedro Viriato Parigot de Souza, 3000", City: "Curitiba", Price: "R$ 2.400.000",
			Area: 280, Bedrooms: 4, Bathrooms: 5, Parking: 4, Broker: "Fernanda Rocha",
			Description: "Cobertura duplex com piscina privativa e vista para o parque.",
			Features:    []string{"Piscina privativa", "Duplex", "Vista panorâmica"},
		},
	}
}

func report() entities.Report {
	return entities.Report{
		Metrics: []entities.ReportMetric{
			{Title: "Receita total", Value: "R$ 4,8 mi", Change: "+18%"},
			{Title: "Imóveis vendidos", Value: "36", Change: "+12%"},
			{Title: "Contratos de locação", Value: "54", Change: "+7%"},
			{Title: "Ticket médio", Value: "R$ 133 mil", Change: "+4%"},
		},
		Monthly: []entities.ReportBar{
			{Label: "Jan", Sales: 22, Rentals: 31},
			{Label: "Fev", Sales: 25, Rentals: 35},
			{Label: "Mar", Sales: 30, Rentals: 40},
			{Label: "Abr", Sales: 28, Rentals: 42},
			{Label: "Mai", Sales: 33, Rentals: 47},
			{Label: "Jun", Sales: 36, Rentals: 54},
		},
		Breakdown: []entities.ReportBreakdown{
			{Label: "Apartamentos", Value: "R$ 2,1 mi", Percent: 44},
			{Label: "Casas", Value: "R$ 1,5 mi", Percent: 31},
			{Label: "Comercial", Value: "R$ 0,8 mi", Percent: 17},
			{Label: "Terrenos", Value: "R$ 0,4 mi", Percent: 8},
		},
		TopAgents: []entities.PanelRow{
			{Title: "Carlos Lima", Subtitle: "12 vendas", Value: "R$ 1,2 mi", Progress: 92},
			{Title: "Fernanda Rocha", Subtitle: "10 vendas", Value: "R$ 980 mil", Progress: 81},
			{Title: "Rafael Mendes", Subtitle: "8 vendas", Value: "R$ 760 mil", Progress: 68},
		},
	}
}

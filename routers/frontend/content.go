package frontend

type serviceTab struct {
	ID          string
	Label       string
	Title       string
	Description string
	Bullets     []string
	Active      bool
}

type serviceCard struct {
	Title       string
	Description string
	Icon        string
}

type faqItem struct {
	Question string
	Answer   string
}

type servicesDataModel struct {
	Headline    string
	Subheadline string
	Tabs        []serviceTab
	Cards       []serviceCard
	FAQ         []faqItem
}

func servicesContent(tabID string) servicesDataModel {
	tabs := []serviceTab{
		{
			ID:          "comprar",
			Label:       "Comprar",
			Title:       "Encontre o imóvel certo",
			Description: "Acompanhamos toda a jornada de compra, da primeira visita à entrega das chaves.",
			Bullets:     []string{"Curadoria de imóveis", "Análise de documentação", "Apoio no financiamento"},
		},
		{
			ID:          "vender",
			Label:       "Vender",
			Title:       "Venda com segurança",
			Description: "Avaliação de mercado, divulgação e negociação conduzidas por corretores credenciados.",
			Bullets:     []string{"Avaliação gratuita", "Fotos profissionais", "Divulgação nos principais portais"},
		},
		{
			ID:          "alugar",
			Label:       "Alugar",
			Title:       "Locação sem complicação",
			Description: "Cuidamos do contrato, das garantias e da vistoria para proprietários e inquilinos.",
			Bullets:     []string{"Análise de crédito", "Contrato digital", "Vistoria de entrada e saída"},
		},
	}

	selected := 0
	for i, tab := range tabs {
		if tab.ID == tabID {
			selected = i
		}
	}
	tabs[selected].Active = true

	return servicesDataModel{
		Headline:    "Serviços imobiliários completos",
		Subheadline: "Compra, venda, locação e administração de imóveis em Curitiba e região.",
		Tabs:        tabs,
		Cards: []serviceCard{
			{Title: "Administração de imóveis", Description: "Gestão de aluguéis, repasses e manutenção.", Icon: "key"},
			{Title: "Avaliação", Description: "Laudos de avaliação com base em dados de mercado.", Icon: "clipboard"},
			{Title: "Assessoria jurídica", Description: "Análise de contratos e documentação.", Icon: "shield"},
			{Title: "Financiamento", Description: "Simulação e acompanhamento junto aos bancos.", Icon: "credit-card"},
		},
		FAQ: []faqItem{
			{Question: "Quanto custa a avaliação do meu imóvel?", Answer: "A avaliação para venda ou locação com a Matriz é gratuita."},
			{Question: "Quais garantias são aceitas na locação?", Answer: "Fiador, seguro-fiança, caução e título de capitalização."},
			{Question: "Vocês atendem fora de Curitiba?", Answer: "Sim, atendemos toda a região metropolitana."},
			{Question: "Como acompanho a venda do meu imóvel?", Answer: "Pelo painel do cliente, com visitas e propostas atualizadas."},
		},
	}
}

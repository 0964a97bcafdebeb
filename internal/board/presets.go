package board

import "github.com/vborges/futura/internal/model"

// Presets returns the five template boards offered to new users. Importing
// a preset goes through the normal import path, so the current board keeps
// its own id and share slug.
func Presets() []model.Board {
	return []model.Board{
		{
			ID:        "template-1",
			Title:     "Meu Próximo Ano Incrível",
			ShareSlug: "proximo-ano-incrivel",
			ThemeID:   "default",
			Sections: []model.Section{
				{ID: "s1-1", Name: "Corpo em Movimento", Items: []model.Item{
					{ID: "i1-1", ImageURL: "https://picsum.photos/seed/fitness/400/300", Caption: "Energia para o dia a dia"},
					{ID: "i1-2", ImageURL: "https://picsum.photos/seed/healthyfood/400/300", Caption: "Alimentação consciente"},
				}},
				{ID: "s1-2", Name: "Mente Serena", Items: []model.Item{
					{ID: "i1-3", ImageURL: "https://picsum.photos/seed/meditation/400/300", Caption: "Momentos de paz"},
					{ID: "i1-4", ImageURL: "https://picsum.photos/seed/reading/400/300", Caption: "Ler 12 livros no ano"},
				}},
				{ID: "s1-3", Name: "Aventuras Memoráveis", Items: []model.Item{
					{ID: "i1-5", ImageURL: "https://picsum.photos/seed/travel/400/300", Caption: "Viajar para um lugar novo"},
					{ID: "i1-6", ImageURL: "https://picsum.photos/seed/hobby/400/300", Caption: "Aprender uma nova habilidade"},
				}},
			},
		},
		{
			ID:        "template-2",
			Title:     "Carreira de Sucesso",
			ShareSlug: "carreira-de-sucesso",
			ThemeID:   "ocean",
			Sections: []model.Section{
				{ID: "s2-1", Name: "Desenvolvimento Profissional", Items: []model.Item{
					{ID: "i2-1", ImageURL: "https://picsum.photos/seed/career-course/400/300", Caption: "Concluir certificação em Gerenciamento de Projetos"},
					{ID: "i2-2", ImageURL: "https://picsum.photos/seed/career-skills/400/300", Caption: "Aprimorar habilidades de liderança"},
				}},
				{ID: "s2-2", Name: "Networking Estratégico", Items: []model.Item{
					{ID: "i2-3", ImageURL: "https://picsum.photos/seed/career-networking/400/300", Caption: "Participar de 3 eventos da indústria"},
					{ID: "i2-4", ImageURL: "https://picsum.photos/seed/career-mentor/400/300", Caption: "Encontrar um mentor na minha área"},
				}},
				{ID: "s2-3", Name: "Projetos de Impacto", Items: []model.Item{
					{ID: "i2-5", ImageURL: "https://picsum.photos/seed/career-project/400/300", Caption: "Liderar o novo projeto de otimização"},
					{ID: "i2-6", ImageURL: "https://picsum.photos/seed/career-presentation/400/300", Caption: "Apresentar resultados para a diretoria"},
				}},
			},
		},
		{
			ID:        "template-3",
			Title:     "Empreendedor Visionário",
			ShareSlug: "empreendedor-visionario",
			ThemeID:   "galaxy",
			Sections: []model.Section{
				{ID: "s3-1", Name: "Produto Inovador", Items: []model.Item{
					{ID: "i3-1", ImageURL: "https://picsum.photos/seed/startup-mvp/400/300", Caption: "Lançar o MVP do nosso app"},
					{ID: "i3-2", ImageURL: "https://picsum.photos/seed/startup-feedback/400/300", Caption: "Coletar feedback dos primeiros 100 usuários"},
				}},
				{ID: "s3-2", Name: "Crescimento & Marketing", Items: []model.Item{
					{ID: "i3-3", ImageURL: "https://picsum.photos/seed/startup-growth/400/300", Caption: "Alcançar 1000 usuários ativos"},
					{ID: "i3-4", ImageURL: "https://picsum.photos/seed/startup-marketing/400/300", Caption: "Estruturar nossa estratégia de conteúdo"},
				}},
				{ID: "s3-3", Name: "Equipe dos Sonhos", Items: []model.Item{
					{ID: "i3-5", ImageURL: "https://picsum.photos/seed/startup-team/400/300", Caption: "Contratar nosso primeiro desenvolvedor"},
					{ID: "i3-6", ImageURL: "https://picsum.photos/seed/startup-investment/400/300", Caption: "Conseguir a primeira rodada de investimento anjo"},
				}},
			},
		},
		{
			ID:        "template-4",
			Title:     "Jornada Criativa",
			ShareSlug: "jornada-criativa",
			ThemeID:   "sunrise",
			Sections: []model.Section{
				{ID: "s4-1", Name: "Projetos Pessoais", Items: []model.Item{
					{ID: "i4-1", ImageURL: "https://picsum.photos/seed/creative-writing/400/300", Caption: "Escrever 50 páginas do meu livro"},
					{ID: "i4-2", ImageURL: "https://picsum.photos/seed/creative-art/400/300", Caption: "Finalizar a série de ilustrações para o portfólio"},
				}},
				{ID: "s4-2", Name: "Fonte de Inspiração", Items: []model.Item{
					{ID: "i4-3", ImageURL: "https://picsum.photos/seed/creative-museum/400/300", Caption: "Visitar museus e galerias mensalmente"},
					{ID: "i4-4", ImageURL: "https://picsum.photos/seed/creative-nature/400/300", Caption: "Fazer caminhadas na natureza para buscar ideias"},
				}},
				{ID: "s4-3", Name: "Dominando a Técnica", Items: []model.Item{
					{ID: "i4-5", ImageURL: "https://picsum.photos/seed/creative-drawing/400/300", Caption: "Praticar desenho de observação diariamente"},
					{ID: "i4-6", ImageURL: "https://picsum.photos/seed/creative-workshop/400/300", Caption: "Fazer um workshop de aquarela"},
				}},
			},
		},
		{
			ID:        "template-5",
			Title:     "Santuário do Bem-Estar",
			ShareSlug: "santuario-bem-estar",
			ThemeID:   "forest",
			Sections: []model.Section{
				{ID: "s5-1", Name: "Saúde Física", Items: []model.Item{
					{ID: "i5-1", ImageURL: "https://picsum.photos/seed/wellness-yoga/400/300", Caption: "Praticar ioga 3x por semana"},
					{ID: "i5-2", ImageURL: "https://picsum.photos/seed/wellness-sleep/400/300", Caption: "Garantir 8 horas de sono por noite"},
				}},
				{ID: "s5-2", Name: "Clareza Mental", Items: []model.Item{
					{ID: "i5-3", ImageURL: "https://picsum.photos/seed/wellness-meditate/400/300", Caption: "Meditação diária de 10 minutos"},
					{ID: "i5-4", ImageURL: "https://picsum.photos/seed/wellness-unplug/400/300", Caption: "Um dia por semana sem redes sociais"},
				}},
				{ID: "s5-3", Name: "Equilíbrio Emocional", Items: []model.Item{
					{ID: "i5-5", ImageURL: "https://picsum.photos/seed/wellness-journal/400/300", Caption: "Escrever no diário de gratidão"},
					{ID: "i5-6", ImageURL: "https://picsum.photos/seed/wellness-connect/400/300", Caption: "Conectar-se com pessoas queridas"},
				}},
			},
		},
	}
}

package reminder

// Verse is one inspirational quote with its scripture reference.
type Verse struct {
	Quote     string
	Reference string
}

var verses = []Verse{
	{Quote: "Tudo posso naquele que me fortalece.", Reference: "Filipenses 4:13"},
	{Quote: "O Senhor é o meu pastor; de nada terei falta.", Reference: "Salmos 23:1"},
	{Quote: "Confie no Senhor de todo o seu coração e não se apoie em seu próprio entendimento.", Reference: "Provérbios 3:5"},
	{Quote: "Porque sou eu que conheço os planos que tenho para vocês', diz o Senhor, 'planos de fazê-los prosperar e não de causar dano, planos de dar a vocês esperança e um futuro.", Reference: "Jeremias 29:11"},
	{Quote: "O que é impossível para os homens é possível para Deus.", Reference: "Lucas 18:27"},
	{Quote: "Pois Deus não nos deu espírito de covardia, mas de poder, de amor e de equilíbrio.", Reference: "2 Timóteo 1:7"},
	{Quote: "Sejam fortes e corajosos. Não tenham medo nem fiquem apavorados por causa delas, pois o Senhor, o seu Deus, vai com vocês; nunca os deixará, nunca os abandonará.", Reference: "Deuteronômio 31:6"},
	{Quote: "Pedi, e dar-se-vos-á; buscai, e encontrareis; batei, e abrir-se-vos-á.", Reference: "Mateus 7:7"},
	{Quote: "Deleite-se no Senhor, e ele atenderá aos desejos do seu coração.", Reference: "Salmos 37:4"},
	{Quote: "Mas os que esperam no Senhor renovarão as suas forças. Voarão alto como águias; correrão e não ficarão exaustos, andarão e não se cansarão.", Reference: "Isaías 40:31"},
}

// Verses returns the full verse pool.
func Verses() []Verse {
	out := make([]Verse, len(verses))
	copy(out, verses)
	return out
}

package dtos

// SearchResultDTO is one hit of the cross-entity search fan-out, with the
// matched term wrapped in <mark> tags.
type SearchResultDTO struct {
	Model         string `json:"model"`
	Category      string `json:"category"`
	URL           string `json:"url"`
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
	Image         string `json:"image,omitempty"`
}

type SearchPageDTO struct {
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Count   int               `json:"count"`
	Results []SearchResultDTO `json:"results"`
}

// FAQMatchDTO is one fuzzy-ranked FAQ search hit.
type FAQMatchDTO struct {
	FAQID      int     `json:"FAQID"`
	QuestionEn string  `json:"QuestionEn"`
	QuestionAr *string `json:"QuestionAr"`
	AnswerEn   *string `json:"AnswerEn"`
	AnswerAr   *string `json:"AnswerAr"`
	Score      int     `json:"Score"`
}

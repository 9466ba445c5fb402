package services

import (
	"fmt"
	"strings"

	"github.com/NGD-Portal/NGD-Backend/src/utils"
)

// ChatbotService answers free-text portal questions with small HTML cards the
// frontend renders directly inside the chat widget.
type ChatbotService struct {
	faqs   *FAQService
	search *SearchService
}

func NewChatbotService(faqs *FAQService, search *SearchService) *ChatbotService {
	return &ChatbotService{faqs: faqs, search: search}
}

// ChatbotReply is one rendered answer. Cards carry HTML; Fallback is set when
// nothing matched and the contact card was returned instead.
type ChatbotReply struct {
	Query    string   `json:"query"`
	Arabic   bool     `json:"arabic"`
	Cards    []string `json:"cards"`
	Fallback bool     `json:"fallback"`
}

const chatbotMaxCards = 3

// Ask matches the query against the FAQ bank first, then the public catalogs,
// and falls back to a contact card when neither yields anything.
func (s *ChatbotService) Ask(query string) (*ChatbotReply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.NewAppError(utils.CodeEmptyQuery, "Question must not be empty", "برجاء كتابة سؤالك")
	}

	arabic := utils.ContainsArabic(query)
	reply := &ChatbotReply{Query: query, Arabic: arabic, Cards: []string{}}

	matches, err := s.faqs.Match(query, chatbotMaxCards)
	if err != nil {
		return nil, err
	}
	for _, match := range matches {
		question := match.QuestionEn
		answer := derefOr(match.AnswerEn, "")
		if arabic {
			if match.QuestionAr != nil && *match.QuestionAr != "" {
				question = *match.QuestionAr
			}
			if match.AnswerAr != nil && *match.AnswerAr != "" {
				answer = *match.AnswerAr
			}
		}
		if answer == "" {
			continue
		}
		reply.Cards = append(reply.Cards, faqCard(question, answer, arabic))
	}

	if len(reply.Cards) < chatbotMaxCards {
		page, err := s.search.Search(query, 1, chatbotMaxCards-len(reply.Cards))
		if err == nil {
			for _, hit := range page.Results {
				title, description := hit.TitleEn, hit.DescriptionEn
				if arabic && hit.TitleAr != "" {
					title, description = hit.TitleAr, hit.DescriptionAr
				}
				reply.Cards = append(reply.Cards, linkCard(title, description, hit.URL, arabic))
			}
		}
	}

	if len(reply.Cards) == 0 {
		reply.Fallback = true
		reply.Cards = append(reply.Cards, contactCard(arabic))
	}
	return reply, nil
}

func cardDir(arabic bool) string {
	if arabic {
		return "rtl"
	}
	return "ltr"
}

func faqCard(question, answer string, arabic bool) string {
	return fmt.Sprintf(
		`<div class="chat-card" dir="%s"><p class="chat-card-question">%s</p><p class="chat-card-answer">%s</p></div>`,
		cardDir(arabic), question, answer)
}

func linkCard(title, description, url string, arabic bool) string {
	more := "Read more"
	if arabic {
		more = "اقرأ المزيد"
	}
	return fmt.Sprintf(
		`<div class="chat-card" dir="%s"><p class="chat-card-title">%s</p><p class="chat-card-body">%s</p><a class="chat-card-link" href="%s">%s</a></div>`,
		cardDir(arabic), title, description, url, more)
}

func contactCard(arabic bool) string {
	if arabic {
		return `<div class="chat-card chat-card-fallback" dir="rtl"><p>عذراً، لم أجد إجابة لسؤالك.</p><p>يمكنك التواصل معنا من خلال صفحة <a class="chat-card-link" href="/contact-us">اتصل بنا</a> وسيقوم فريقنا بالرد عليك.</p></div>`
	}
	return `<div class="chat-card chat-card-fallback" dir="ltr"><p>Sorry, I couldn't find an answer to your question.</p><p>You can reach our team through the <a class="chat-card-link" href="/contact-us">Contact Us</a> page and we'll get back to you.</p></div>`
}

package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/interview-evaluator/internal/models"
)

// NoHistorySentinel is substituted for the digest when no prior feedback
// exists.
const NoHistorySentinel = "Nenhum histórico de feedback anterior disponível."

// HistorySummarizer renders the feedback history into a bounded digest for
// prompt inclusion: one fixed block per record, chronological order, record
// summaries only (never the full feedback text).
type HistorySummarizer struct{}

func NewHistorySummarizer() *HistorySummarizer {
	return &HistorySummarizer{}
}

func (hs *HistorySummarizer) Digest(records []models.FeedbackRecord) string {
	if len(records) == 0 {
		return NoHistorySentinel
	}

	blocks := make([]string, 0, len(records))
	for i, record := range records {
		blocks = append(blocks, fmt.Sprintf(
			"--- Feedback %d ---\nData: %s\nArquivo: %s\nNota: %s\nResumo: %s\n",
			i+1,
			record.Timestamp,
			record.SourceName,
			record.Score,
			record.Summary,
		))
	}

	return strings.Join(blocks, "\n")
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt substitutes the transcript and the history digest into
// the fixed evaluation template. The template instructs the model to answer
// with exactly 8 numbered topics, the first carrying the 0-10 grade that
// ScoreExtractor looks for; template and extractor are tested together.
func (pb *PromptBuilder) BuildFeedbackPrompt(transcript, historyDigest string) string {
	return fmt.Sprintf(`Você é um avaliador profissional e imparcial de entrevistas de emprego (técnicas e comportamentais). Sua missão é fornecer um feedback detalhado e construtivo **focando exclusivamente na performance do candidato (EU)**, com base em trechos reais da entrevista transcrita abaixo.

**Instruções Cruciais para a Análise:**
* A transcrição pode não ter identificação explícita de quem fala. Sua tarefa é **inferir quem é o candidato (EU)** com base nas perguntas típicas do recrutador e nas respostas que se alinham à uma apresentação pessoal ou profissional.
* **Priorize a análise das MINHAS falas.** O feedback deve ser sobre a **MINHA comunicação, postura, clareza e estratégia de respostas**, e não sobre as perguntas do recrutador.
* Ao citar trechos, **deixe claro se o trecho é uma pergunta do recrutador ou uma fala MINHA**, mas use-o apenas para contextualizar a **MINHA resposta ou a MINHA performance**.
* Se o trecho for longo, cite apenas a parte mais relevante e adicione "..." se for truncado.
* Certifique-se de que cada um dos 8 tópicos solicitados abaixo seja abordado de forma completa e detalhada, com exemplos.

Sua resposta DEVE ser estruturada exatamente com os seguintes tópicos numerados, incluindo o número e o nome do tópico em negrito:

1.  **Nota geral de 0 a 10 da MINHA performance.**
2.  **Meus principais acertos (do candidato)**
3.  **O que ME prejudicou (erros, falas inseguras, falta de clareza ou foco)**
4.  **Sugira formas melhores de EU ME expressar**
5.  **O que reorganizar no MEU roteiro de respostas**
6.  **Evolução com base na memória de entrevistas anteriores**
7.  **Dicas mentais e estratégias para melhorar a segurança e desempenho**
8.  **Exemplos práticos de como responder melhor**

Detalhes para cada tópico:

**1. Nota geral de 0 a 10 da MINHA performance.**
    - Forneça uma nota numérica clara.

**2. Meus principais acertos (do candidato)**
    - Com trechos específicos da transcrição que comprovem isso (ex: "Quando o candidato disse '...', demonstrou clareza/confiança/...").

**3. O que ME prejudicou (erros, falas inseguras, falta de clareza ou foco)**
    - Com trechos reais **DAS MINHAS falas** que demonstrem os pontos fracos.

**4. Sugira formas melhores de EU ME expressar**
    - Reescreva partes ruins **DAS MINHAS falas** de forma ideal, mostrando como eu poderia ter formulado a resposta.

**5. O que reorganizar no MEU roteiro de respostas**
    - Temas que deveriam vir antes, respostas que se alongam sem necessidade etc.

**6. Evolução com base na memória de entrevistas anteriores**
    - Use o seguinte histórico de feedbacks para a análise de evolução, regressão ou estagnação em aspectos específicos **DA MINHA performance**:
    Histórico de Feedbacks Anteriores:
    """
    %s
    """
    - Se o histórico estiver vazio ou não houver dados relevantes, indique isso e ofereça dicas gerais para a próxima.

**7. Dicas mentais e estratégias para melhorar a segurança e desempenho**
    - Orientações práticas e acionáveis.

**8. Exemplos práticos de como responder melhor**
    - Dê exemplos práticos de como EU poderia responder melhor, com trechos simulados que eu poderia usar no lugar do que foi dito.

⚠️ **IMPORTANTE:**
-   Seja direto, detalhado e específico.
-   Não resuma demais. Justifique com exemplos reais sempre que possível, **priorizando citações das MINHAS falas**.
-   **Foco EXCLUSIVAMENTE na MINHA qualidade de comunicação, clareza, postura e estratégia como candidato.**
-   Lembre-se: o objetivo é a MINHA evolução constante.

Transcrição da entrevista:
"""
%s
"""`, historyDigest, transcript)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaster/catalog"
	"quizmaster/services"
)

// QuizController drives the per-user quiz state machine over HTTP.
// Contract no-ops (unknown level at setup, re-answering an answered
// slot) return the current state with 200, matching the silent-refusal
// error design; operations invalid in the current status return 409.
type QuizController struct {
	sessions *services.SessionManager
}

func NewQuizController(sessions *services.SessionManager) *QuizController {
	return &QuizController{sessions: sessions}
}

// Languages serves the static quiz catalog, without the question pools
// (answers included) leaking to the client.
func (qc *QuizController) Languages(c *gin.Context) {
	type levelView struct {
		Name       string `json:"name"`
		Difficulty string `json:"difficulty"`
		QuizLength int    `json:"quizLength"`
	}
	type languageView struct {
		Name        string      `json:"name"`
		Code        string      `json:"code"`
		Flag        string      `json:"flag"`
		Description string      `json:"description"`
		Levels      []levelView `json:"levels"`
	}

	out := make([]languageView, 0, len(catalog.Languages))
	for _, lang := range catalog.Languages {
		view := languageView{
			Name:        lang.Name,
			Code:        lang.Code,
			Flag:        lang.Flag,
			Description: lang.Description,
		}
		for _, lvl := range lang.Levels {
			view.Levels = append(view.Levels, levelView{
				Name:       lvl.Name,
				Difficulty: string(lvl.Difficulty),
				QuizLength: lvl.QuizLength,
			})
		}
		out = append(out, view)
	}
	c.JSON(http.StatusOK, out)
}

// State returns the current session state plus the pending toasts and
// whether a resumable snapshot exists.
func (qc *QuizController) State(c *gin.Context) {
	machine := qc.machine(c)
	c.JSON(http.StatusOK, gin.H{
		"state":         machine.State(),
		"savedQuiz":     machine.HasSavedQuiz(c.Request.Context()),
		"pendingToasts": machine.Engine().PendingToasts(),
	})
}

type selectLanguageRequest struct {
	Code string `json:"code" binding:"required"`
}

func (qc *QuizController) SelectLanguage(c *gin.Context) {
	var req selectLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	machine := qc.machine(c)
	if err := machine.SelectLanguage(req.Code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": machine.State()})
}

func (qc *QuizController) StartSetup(c *gin.Context) {
	machine := qc.machine(c)
	if err := machine.StartSetup(); err != nil {
		qc.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": machine.State()})
}

type startQuizRequest struct {
	LevelName string `json:"levelName" binding:"required"`
}

// StartQuiz completes setup: the question list is fetched (generated
// or fallback) and the quiz begins. The call returns once generation
// has resolved.
func (qc *QuizController) StartQuiz(c *gin.Context) {
	var req startQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	machine := qc.machine(c)
	if err := machine.SetupComplete(c.Request.Context(), req.LevelName); err != nil {
		qc.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": machine.State()})
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (qc *QuizController) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	machine := qc.machine(c)
	if err := machine.AnswerQuestion(c.Request.Context(), req.Answer); err != nil {
		qc.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":         machine.State(),
		"pendingToasts": machine.Engine().PendingToasts(),
	})
}

func (qc *QuizController) Next(c *gin.Context) {
	machine := qc.machine(c)
	if err := machine.NextQuestion(c.Request.Context()); err != nil {
		qc.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":         machine.State(),
		"pendingToasts": machine.Engine().PendingToasts(),
	})
}

func (qc *QuizController) Restart(c *gin.Context) {
	machine := qc.machine(c)
	machine.RestartQuiz(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"state": machine.State()})
}

func (qc *QuizController) Resume(c *gin.Context) {
	machine := qc.machine(c)
	if err := machine.ResumeQuiz(c.Request.Context()); err != nil {
		if errors.Is(err, services.ErrNoSavedQuiz) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No resumable quiz"})
			return
		}
		qc.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": machine.State()})
}

// DismissToast pops the head of the toast queue.
func (qc *QuizController) DismissToast(c *gin.Context) {
	machine := qc.machine(c)
	machine.Engine().DismissToast()
	c.JSON(http.StatusOK, gin.H{"pendingToasts": machine.Engine().PendingToasts()})
}

func (qc *QuizController) machine(c *gin.Context) *services.QuizMachine {
	return qc.sessions.Machine(c.GetString("email"))
}

func (qc *QuizController) transitionError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": "Operation not valid in the current quiz state"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionQuiz  = "quiz"
	actionShare = "share"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizRetake = "retake"
	quizAnswer = "answer"
)

// Share sub-actions.
const (
	shareQR = "qr"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// subAction returns the first parameter, or "" if there is none.
func (cd callbackData) subAction() string {
	if len(cd.Params) == 0 {
		return ""
	}
	return cd.Params[0]
}

// quizAnswerParams is the decoded payload of an answer button.
type quizAnswerParams struct {
	SessionID   string
	QuestionNum int
	OptionIndex int
}

// parseQuizAnswer decodes "quiz:answer:<session>:<question>:<option>".
func (cd callbackData) parseQuizAnswer() (quizAnswerParams, error) {
	if cd.Action != actionQuiz || len(cd.Params) != 4 || cd.Params[0] != quizAnswer {
		return quizAnswerParams{}, errMalformedCallback
	}

	questionNum, err := strconv.Atoi(cd.Params[2])
	if err != nil {
		return quizAnswerParams{}, errMalformedCallback
	}
	optionIndex, err := strconv.Atoi(cd.Params[3])
	if err != nil {
		return quizAnswerParams{}, errMalformedCallback
	}

	return quizAnswerParams{
		SessionID:   cd.Params[1],
		QuestionNum: questionNum,
		OptionIndex: optionIndex,
	}, nil
}

// parseShareQR decodes "share:qr:<house>".
func (cd callbackData) parseShareQR() (entities.House, error) {
	if cd.Action != actionShare || len(cd.Params) != 2 || cd.Params[0] != shareQR {
		return "", errMalformedCallback
	}
	house, ok := entities.ParseHouse(cd.Params[1])
	if !ok {
		return "", errMalformedCallback
	}
	return house, nil
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizRetakeCallback builds callback data for retaking the quiz.
func buildQuizRetakeCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizRetake},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(sessionID string, questionNum, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			sessionID,
			strconv.Itoa(questionNum),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// buildShareQRCallback builds callback data for requesting a share QR code.
func buildShareQRCallback(house entities.House) string {
	return callbackData{
		Action: actionShare,
		Params: []string{shareQR, house.Slug()},
	}.encode()
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const attachmentWarning = "your attachment could not be uploaded; the text was saved without it"

type DoubtStore interface {
	Create(ctx context.Context, d *model.Doubt) error
	FindByID(ctx context.Context, id uint) (*model.Doubt, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Doubt, error)
	ListPending(ctx context.Context) ([]model.Doubt, error)
	Answer(ctx context.Context, resp *model.DoubtResponse) (bool, error)
}

type Uploader interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// Attachment is an uploaded file handed over by the transport layer.
type Attachment struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type DoubtResult struct {
	Doubt   *model.Doubt `json:"doubt"`
	Warning string       `json:"warning,omitempty"`
}

type ResponseResult struct {
	Response *model.DoubtResponse `json:"response"`
	Warning  string               `json:"warning,omitempty"`
}

type DoubtService struct {
	Store   DoubtStore
	Storage Uploader
	now     func() time.Time
}

func NewDoubtService(store DoubtStore, storage Uploader) *DoubtService {
	return &DoubtService{Store: store, Storage: storage, now: time.Now}
}

// checkAttachment rejects files whose extension or sniffed content is not
// allowed. It returns a reader positioned at the start of the file.
func checkAttachment(file *Attachment) (io.Reader, string, error) {
	if !util.IsAllowedExtension(file.Filename, util.AllowedAttachmentExtensions) {
		return nil, "", util.ErrUnsupportedFileType
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(file.Reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", util.Internal("read attachment", err)
	}
	head = head[:n]
	mimeType, err := util.ValidateMimeType(bytes.NewReader(head), util.AllowedAttachmentMimeTypes)
	if err != nil {
		return nil, "", util.Wrap(util.ErrUnsupportedFileType, err)
	}
	return io.MultiReader(bytes.NewReader(head), file.Reader), mimeType, nil
}

// upload stores the attachment and returns its URL, or "" when the upload
// failed. Failures are logged, never returned.
func (s *DoubtService) upload(ctx context.Context, name string, reader io.Reader, size int64, mimeType string) string {
	url, err := s.Storage.Upload(ctx, name, reader, size, mimeType)
	if err != nil {
		logger.Log.Warn("Attachment upload failed",
			zap.String("object", name),
			zap.Error(err))
		return ""
	}
	return url
}

func (s *DoubtService) Create(ctx context.Context, studentID uint, text string, file *Attachment) (*DoubtResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.Validation("please describe your doubt")
	}

	result := &DoubtResult{}
	imageURL := ""
	if file != nil {
		reader, mimeType, err := checkAttachment(file)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("doubt_%d_%d.%s", studentID, s.now().Unix(), util.FileExtension(file.Filename))
		imageURL = s.upload(ctx, name, reader, file.Size, mimeType)
		if imageURL == "" {
			result.Warning = attachmentWarning
		}
	}

	d := &model.Doubt{
		StudentID:    studentID,
		QuestionText: text,
		ImageURL:     imageURL,
		Status:       model.DoubtPending,
		CreatedAt:    s.now(),
	}
	if err := s.Store.Create(ctx, d); err != nil {
		return nil, util.Internal("save doubt", err)
	}
	result.Doubt = d
	return result, nil
}

func (s *DoubtService) ListMine(ctx context.Context, studentID uint) ([]model.Doubt, error) {
	list, err := s.Store.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, util.Internal("list doubts", err)
	}
	return list, nil
}

func (s *DoubtService) ListPending(ctx context.Context) ([]model.Doubt, error) {
	list, err := s.Store.ListPending(ctx)
	if err != nil {
		return nil, util.Internal("list pending doubts", err)
	}
	return list, nil
}

// Respond answers a pending doubt with text, a file, or both. The response
// is stored and the doubt closed in one transaction.
func (s *DoubtService) Respond(ctx context.Context, teacherID, doubtID uint, text string, file *Attachment) (*ResponseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" && file == nil {
		return nil, util.Validation("please provide a text response or upload a file")
	}

	d, err := s.Store.FindByID(ctx, doubtID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDoubtNotFound
	}
	if err != nil {
		return nil, util.Internal("load doubt", err)
	}
	if d.Status != model.DoubtPending {
		return nil, util.ErrDoubtAlreadyClosed
	}

	result := &ResponseResult{}
	fileURL := ""
	if file != nil {
		reader, mimeType, err := checkAttachment(file)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("reply_%d_%d.%s", doubtID, s.now().Unix(), util.FileExtension(file.Filename))
		fileURL = s.upload(ctx, name, reader, file.Size, mimeType)
		if fileURL == "" {
			if text == "" {
				return nil, util.Upstream("could not upload the response file", nil)
			}
			result.Warning = attachmentWarning
		}
	}

	resp := &model.DoubtResponse{
		DoubtID:          doubtID,
		TeacherID:        teacherID,
		ResponseText:     text,
		ResponseImageURL: fileURL,
		CreatedAt:        s.now(),
	}
	answered, err := s.Store.Answer(ctx, resp)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDoubtNotFound
	}
	if err != nil {
		return nil, util.Internal("save response", err)
	}
	if !answered {
		return nil, util.ErrDoubtAlreadyClosed
	}
	result.Response = resp
	return result, nil
}

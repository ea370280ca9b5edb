package transcribe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstranscribe "github.com/aws/aws-sdk-go-v2/service/transcribe"
	transcribetypes "github.com/aws/aws-sdk-go-v2/service/transcribe/types"
	"github.com/aws/smithy-go"

	"github.com/kevinzjpeng/voice-record/internal/config"
	"github.com/kevinzjpeng/voice-record/internal/logger"
)

const pollInterval = 10 * time.Second

type implAWS struct {
	cfg    *config.Config
	logger logger.Logger
}

// NewAWS creates a Transcriber backed by the Amazon Transcribe service.
// Recordings are uploaded under a content-hash key, so re-running the same
// file skips the upload and reuses the finished job.
func NewAWS(cfg *config.Config, log logger.Logger) Transcriber {
	return &implAWS{
		cfg:    cfg,
		logger: log,
	}
}

func (a *implAWS) Transcribe(ctx context.Context, audioPath, language string) (Result, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(a.cfg.AWS.Region))
	if err != nil {
		return Result{}, fmt.Errorf("load AWS config: %w", err)
	}

	hash, err := fileHash(audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("hash input file: %w", err)
	}

	bucket := a.cfg.AWS.Bucket
	key := fmt.Sprintf("uploads/%s_%s", hash, filepath.Base(audioPath))
	jobName := fmt.Sprintf("transcribe-%s", hash)

	s3Client := s3.NewFromConfig(awsCfg)

	exists, err := a.objectExists(ctx, s3Client, bucket, key)
	if err != nil {
		return Result{}, fmt.Errorf("check S3 object: %w", err)
	}
	if exists {
		a.logger.Info(ctx, "File already in S3, skipping upload: %s", key)
	} else {
		a.logger.Info(ctx, "Uploading to s3://%s/%s", bucket, key)
		if err := a.upload(ctx, s3Client, bucket, key, audioPath); err != nil {
			return Result{}, fmt.Errorf("upload to S3: %w", err)
		}
	}

	transcribeClient := awstranscribe.NewFromConfig(awsCfg)
	if err := a.ensureJob(ctx, transcribeClient, jobName, bucket, key, audioPath, language); err != nil {
		return Result{}, err
	}

	// Transcribe names the output "<jobName>.json" in the output bucket.
	return a.fetchResult(ctx, s3Client, bucket, jobName+".json")
}

// fileHash returns the first 16 hex digits of the file's SHA-256 digest.
func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil))[:16], nil
}

// objectExists uses HeadObject to determine if the object already exists.
func (a *implAWS) objectExists(ctx context.Context, client *s3.Client, bucket, key string) (bool, error) {
	_, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// upload stores the given file in the bucket under key.
func (a *implAWS) upload(ctx context.Context, client *s3.Client, bucket, key, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   f,
	})
	return err
}

// ensureJob starts a transcription job for the uploaded media unless one with
// the same name already ran, then polls until it completes.
func (a *implAWS) ensureJob(ctx context.Context, client *awstranscribe.Client, jobName, bucket, key, audioPath, language string) error {
	exists, status, err := a.jobStatus(ctx, client, jobName)
	if err != nil {
		return fmt.Errorf("check transcription job: %w", err)
	}

	if exists {
		switch status {
		case string(transcribetypes.TranscriptionJobStatusCompleted):
			a.logger.Info(ctx, "Transcription job %q already completed", jobName)
			return nil
		case string(transcribetypes.TranscriptionJobStatusFailed):
			return fmt.Errorf("transcription job %q previously failed, delete it to retry", jobName)
		default:
			a.logger.Info(ctx, "Transcription job %q already exists with status: %s", jobName, status)
		}
	} else {
		mediaURI := fmt.Sprintf("s3://%s/%s", bucket, key)
		input := &awstranscribe.StartTranscriptionJobInput{
			TranscriptionJobName: &jobName,
			LanguageCode:         awsLanguageCode(language),
			MediaFormat:          mediaFormat(audioPath),
			Media: &transcribetypes.Media{
				MediaFileUri: &mediaURI,
			},
			OutputBucketName: &bucket,
		}
		if _, err := client.StartTranscriptionJob(ctx, input); err != nil {
			return fmt.Errorf("start transcription job: %w", err)
		}
		a.logger.Info(ctx, "Transcription job started: %s", jobName)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

PollLoop:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, status, err := a.jobStatus(ctx, client, jobName)
			if err != nil {
				return fmt.Errorf("poll transcription job: %w", err)
			}
			a.logger.Debug(ctx, "Job %s status: %s", jobName, status)
			switch status {
			case string(transcribetypes.TranscriptionJobStatusCompleted):
				break PollLoop
			case string(transcribetypes.TranscriptionJobStatusFailed):
				return fmt.Errorf("transcription job %q failed", jobName)
			}
		}
	}

	return nil
}

// jobStatus checks whether the transcription job exists and returns its status.
func (a *implAWS) jobStatus(ctx context.Context, client *awstranscribe.Client, jobName string) (bool, string, error) {
	out, err := client.GetTranscriptionJob(ctx, &awstranscribe.GetTranscriptionJobInput{
		TranscriptionJobName: &jobName,
	})
	if err != nil {
		if strings.Contains(err.Error(), "The requested job couldn't be found") {
			return false, "", nil
		}
		return false, "", err
	}
	return true, string(out.TranscriptionJob.TranscriptionJobStatus), nil
}

// fetchResult downloads the result document the job wrote to S3.
func (a *implAWS) fetchResult(ctx context.Context, client *s3.Client, bucket, key string) (Result, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return Result{}, fmt.Errorf("download transcription result: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read transcription result: %w", err)
	}

	return ParseTranscribeOutput(data)
}

// awsLanguageCode maps a recording language code to the closest Amazon
// Transcribe language code. Unknown codes pass through unchanged.
func awsLanguageCode(code string) transcribetypes.LanguageCode {
	switch code {
	case "en":
		return transcribetypes.LanguageCodeEnUs
	case "yue":
		return transcribetypes.LanguageCode("zh-HK")
	case "zh":
		return transcribetypes.LanguageCode("zh-CN")
	default:
		return transcribetypes.LanguageCode(code)
	}
}

// mediaFormat derives the Transcribe media format from the file extension.
func mediaFormat(path string) transcribetypes.MediaFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return transcribetypes.MediaFormat(ext)
}

// isNotFoundError determines if an error from AWS indicates a "not found" condition.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == "NotFoundException" || apiErr.ErrorCode() == "404" {
			return true
		}
	}
	return strings.Contains(err.Error(), "NotFound:")
}

// transcribeOutput mirrors the JSON document Amazon Transcribe writes to S3.
type transcribeOutput struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
		Items []transcribeItem `json:"items"`
	} `json:"results"`
	Status string `json:"status"`
}

// transcribeItem represents an individual word or punctuation mark.
type transcribeItem struct {
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Type         string `json:"type"`
	Alternatives []struct {
		Content string `json:"content"`
	} `json:"alternatives"`
}

// ParseTranscribeOutput decodes an Amazon Transcribe result document.
// Sentence-level segments are rebuilt from the per-word items.
// Exported so tests can run without AWS credentials.
func ParseTranscribeOutput(data []byte) (Result, error) {
	var out transcribeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Result{}, fmt.Errorf("parse transcription result: %w", err)
	}
	if len(out.Results.Transcripts) == 0 {
		return Result{}, fmt.Errorf("no transcript found in result")
	}

	return Result{
		Text:     strings.TrimSpace(out.Results.Transcripts[0].Transcript),
		Segments: segmentsFromItems(out.Results.Items),
	}, nil
}

// segmentsFromItems groups consecutive word items into sentences. A sentence
// closes on terminal punctuation. Punctuation items carry no timestamps and
// attach to the preceding word.
func segmentsFromItems(items []transcribeItem) []Segment {
	var segments []Segment
	var cur strings.Builder
	var start, end float64
	open := false

	flush := func() {
		text := strings.TrimSpace(cur.String())
		if text != "" {
			segments = append(segments, Segment{Start: start, End: end, Text: text})
		}
		cur.Reset()
		open = false
	}

	for _, item := range items {
		if len(item.Alternatives) == 0 {
			continue
		}
		content := item.Alternatives[0].Content

		if item.Type == "punctuation" {
			if cur.Len() == 0 {
				continue
			}
			cur.WriteString(content)
			if isSentenceEnd(content) {
				flush()
			}
			continue
		}

		st, err1 := strconv.ParseFloat(item.StartTime, 64)
		en, err2 := strconv.ParseFloat(item.EndTime, 64)
		if err1 != nil || err2 != nil {
			continue
		}

		if !open {
			start = st
			open = true
		} else {
			cur.WriteString(" ")
		}
		end = en
		cur.WriteString(content)
	}
	flush()

	return segments
}

func isSentenceEnd(p string) bool {
	switch p {
	case ".", "!", "?", "。", "！", "？":
		return true
	}
	return false
}

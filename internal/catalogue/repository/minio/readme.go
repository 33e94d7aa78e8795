package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"
	"time"

	"legaldata-srv/internal/catalogue/repository"
	pkgMinio "legaldata-srv/pkg/minio"
	"legaldata-srv/pkg/util"
)

// SaveReadme uploads the README as the latest copy and as a per-run archive copy.
func (r *implRepository) SaveReadme(ctx context.Context, opts repository.SaveReadmeOptions) (repository.SaveReadmeOutput, error) {
	latest := r.latestObjectName(opts.FileName)
	archive := r.archiveObjectName(opts.GeneratedAt, opts.RunID)
	metadata := buildMetadata(opts)

	var out repository.SaveReadmeOutput
	for _, objectName := range []string{latest, archive} {
		_, err := r.minio.UploadFile(ctx, &pkgMinio.UploadRequest{
			BucketName:  r.opts.Bucket,
			ObjectName:  objectName,
			Reader:      bytes.NewReader(opts.Content),
			Size:        int64(len(opts.Content)),
			ContentType: contentTypeMarkdown,
			Metadata:    metadata,
		})
		if err != nil {
			r.l.Errorf(ctx, "catalogue.repository.minio.SaveReadme: Upload of %s failed: %v", objectName, err)
			return out, fmt.Errorf("%w: %v", repository.ErrReadmeSaveFailed, err)
		}
		out.Locations = append(out.Locations, fmt.Sprintf("%s/%s", r.opts.Bucket, objectName))
	}

	if r.opts.PresignExpiry > 0 {
		presigned, err := r.minio.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
			BucketName: r.opts.Bucket,
			ObjectName: latest,
			Expiry:     r.opts.PresignExpiry,
		})
		if err != nil {
			// The copies are already in place.
			r.l.Warnf(ctx, "catalogue.repository.minio.SaveReadme: Failed to generate presigned URL: %v", err)
		} else {
			out.DownloadURL = presigned.URL
		}
	}

	return out, nil
}

func (r *implRepository) latestObjectName(fileName string) string {
	if fileName == "" {
		fileName = "README.md"
	}
	return r.opts.ObjectPrefix + path.Base(fileName)
}

func (r *implRepository) archiveObjectName(generatedAt time.Time, runID string) string {
	return fmt.Sprintf("%sruns/%s/%s.md", r.opts.ObjectPrefix, util.DateToStr(generatedAt), runID)
}

func buildMetadata(opts repository.SaveReadmeOptions) map[string]string {
	md := map[string]string{
		"run_id":       opts.RunID,
		"generated_at": opts.GeneratedAt.UTC().Format(time.RFC3339),
	}
	for docType, total := range opts.Totals {
		md["total_"+docType] = strconv.FormatInt(total, 10)
	}
	return md
}

package services

import (
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// deliveryTransformation crops product shots to the 3:4 card ratio.
const deliveryTransformation = "c_fill,g_auto,w_600,h_800,q_auto,f_auto"

// ImageResolver turns stored image references into delivery URLs. Absolute
// http(s) URLs pass through; anything else is treated as a Cloudinary
// public id.
type ImageResolver struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewImageResolver returns a pass-through resolver when cloudName is empty.
func NewImageResolver(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*ImageResolver, error) {
	r := &ImageResolver{logger: logger}
	if cloudName == "" {
		return r, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	r.cld = cld
	return r, nil
}

func (r *ImageResolver) Resolve(ref string) string {
	if r == nil || ref == "" || isAbsoluteURL(ref) || r.cld == nil {
		return ref
	}
	img, err := r.cld.Image(ref)
	if err != nil {
		r.logger.Warn("⚠️ Could not build image URL", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	img.Transformation = deliveryTransformation
	url, err := img.String()
	if err != nil {
		r.logger.Warn("⚠️ Could not build image URL", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	return url
}

// ResolveAll maps Resolve over refs.
func (r *ImageResolver) ResolveAll(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = r.Resolve(ref)
	}
	return out
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

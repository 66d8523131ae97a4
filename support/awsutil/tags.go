package awsutil

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// FindTagByKey searches for a tag with the specified key in the given slice of EC2 tags.
// Returns the tag if found, nil otherwise.
func FindTagByKey(tags []ec2types.Tag, key string) *ec2types.Tag {
	for i := range tags {
		if aws.ToString(tags[i].Key) == key {
			return &tags[i]
		}
	}
	return nil
}

// HasTagWithValue checks if a tag exists with the specified key and value.
func HasTagWithValue(tags []ec2types.Tag, key, value string) bool {
	tag := FindTagByKey(tags, key)
	return tag != nil && aws.ToString(tag.Value) == value
}

// GetTagValue retrieves the value of a tag with the specified key.
// Returns the value if found, empty string otherwise.
func GetTagValue(tags []ec2types.Tag, key string) string {
	tag := FindTagByKey(tags, key)
	if tag != nil {
		return aws.ToString(tag.Value)
	}
	return ""
}

// EC2Tags converts a key/value map into EC2 tags ordered by key.
func EC2Tags(tags map[string]string) []ec2types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ec2types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, ec2types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return out
}

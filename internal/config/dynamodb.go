package config

// DynamoDBConfig holds configuration for the DynamoDB tracking table.
type DynamoDBConfig struct {
	InUse             bool   `mapstructure:"in_use"`
	Region            string `mapstructure:"region"`
	TrackingTableName string `mapstructure:"tracking_table_name"`
	// Static credentials; when empty the default AWS credential chain is used
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

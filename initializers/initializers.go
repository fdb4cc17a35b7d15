package initializers

import (
	"context"

	"juris-tools-backend/config"
	"juris-tools-backend/fiberlog"
	approvalhandler "juris-tools-backend/lib/approval"
	checklisthandler "juris-tools-backend/lib/checklist"
	commenthandler "juris-tools-backend/lib/comment"
	documenthandler "juris-tools-backend/lib/document"
	filestorage "juris-tools-backend/lib/file-storage"
	filinghandler "juris-tools-backend/lib/filing"
	workspacehandler "juris-tools-backend/lib/workspace"
	workspacehistoryhandler "juris-tools-backend/lib/workspace-history"
	s3client "juris-tools-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler(s3client.NewClient(s3client.Client))
	workspacehandler.NewHandler()
	documenthandler.NewHandler()
	checklisthandler.NewHandler()
	approvalhandler.NewHandler(config.Conf.Smtp.From)
	filinghandler.NewHandler()
	commenthandler.NewHandler()
	workspacehistoryhandler.NewHandler()
}

package main

import (
	"github.com/ActiveState/launcher/internal/constants"
	"github.com/ActiveState/launcher/internal/errs"
	"github.com/ActiveState/launcher/internal/locale"
	"github.com/ActiveState/launcher/internal/logging"
)

// unwrapError resolves err into the code to exit with and the error to show the user, if any.
func unwrapError(err error) (int, error) {
	if err == nil {
		return constants.ExitSuccess, nil
	}

	isInput := errs.IsInputError(err)

	// Log error if this isn't a user input error
	if !isInput {
		logging.Error("Returning error:\n%s\nCreated at:\n%s", errs.JoinMessage(err, "\n"), errs.StackString(err))
	} else {
		logging.Debug("Input error: %s", errs.JoinMessage(err))
	}

	code := errs.ParseExitCode(err)

	if errs.IsSilent(err) {
		logging.Debug("Suppressing silent failure: %v", err.Error())
		return code, nil
	}

	if isInput {
		err = errs.WrapUserFacing(err, errs.UserMessage(err),
			errs.SetInput(),
			errs.SetTips(locale.Tr("err_tip_run_help", constants.CommandName)),
		)
	}

	return code, err
}

package loyalty

// GraphQL documents. Every list query takes the same (cursor, search)
// variable set with a fixed page limit; every response is a tagged union,
// so each document selects __typename alongside the variant fragments.

const pageLimit = "100"

const errorVariants = `
    ... on InputValidationError {
      errors {
        field
        type
        message
      }
    }
    ... on GeneralError {
      code
      message
    }`

const listArgs = `(pagination: {limit: ` + pageLimit + `, nextCursor: $nextCursor, prevCursor: $prevCursor}, search: $search)`
const listVarsDecl = `($nextCursor: String, $prevCursor: String, $search: String)`

const pageHeader = `
      nextCursor
      prevCursor
      total`

const loginDoc = `
mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    __typename
    ... on LoginSuccess {
      accessToken
      refreshToken
    }
    ... on LoginError {
      message
      type
    }
  }
}`

const healthCheckDoc = `
query HealthCheck {
  healthCheck
}`

const customersDoc = `
query Customers` + listVarsDecl + ` {
  customers` + listArgs + ` {
    __typename` + errorVariants + `
    ... on CustomerPagination {` + pageHeader + `
      items {
        id
        externalId
        name
        lastName
        status
        phoneNumber
        email
      }
    }
  }
}`

const usersDoc = `
query Users` + listVarsDecl + ` {
  users` + listArgs + ` {
    __typename` + errorVariants + `
    ... on UserPagination {` + pageHeader + `
      items {
        id
        firstName
        lastName
        email
        isActive
      }
    }
  }
}`

const gasStationsDoc = `
query GasStations` + listVarsDecl + ` {
  gasStations` + listArgs + ` {
    __typename` + errorVariants + `
    ... on GasStationPagination {` + pageHeader + `
      items {
        id
        name
        externalId
        crePermission
        latitude
        longitude
        city
        regularPrice
        premiumPrice
        dieselPrice
      }
    }
  }
}`

const productsDoc = `
query Products` + listVarsDecl + ` {
  products` + listArgs + ` {
    __typename` + errorVariants + `
    ... on ProductsPagination {` + pageHeader + `
      items {
        id
        name
        codename
        isActive
      }
    }
  }
}`

const marginsDoc = `
query GasStationMargins` + listVarsDecl + ` {
  gasStationsMargin` + listArgs + ` {
    __typename` + errorVariants + `
    ... on GasStationMarginPagination {` + pageHeader + `
      items {
        id
        marginType
        margin
        points
        product {
          id
          name
        }
        gasStation {
          id
          name
        }
      }
    }
  }
}`

const levelsDoc = `
query Levels` + listVarsDecl + ` {
  levels` + listArgs + ` {
    __typename` + errorVariants + `
    ... on LevelPagination {` + pageHeader + `
      items {
        id
        name
        minPoints
        isActive
      }
    }
  }
}`

const customerLevelsDoc = `
query CustomerLevels($nextCursor: String, $prevCursor: String) {
  customerLevels(pagination: {limit: ` + pageLimit + `, nextCursor: $nextCursor, prevCursor: $prevCursor}) {
    __typename` + errorVariants + `
    ... on CustomerLevelPagination {` + pageHeader + `
      items {
        id
        customer {
          id
          name
          lastName
          phoneNumber
        }
        level {
          id
          name
        }
        startDate
        endDate
        isActive
      }
    }
  }
}`

const benefitFields = `
        id
        name
        type
        frequency
        discount
        numTimes
        externalProductId
        stock
        isActive
        dependency
        minAmount
        level {
          id
          name
          minPoints
          isActive
        }
        createdAt
        updatedAt`

const benefitsDoc = `
query Benefits` + listVarsDecl + ` {
  benefits` + listArgs + ` {
    __typename` + errorVariants + `
    ... on BenefitPagination {` + pageHeader + `
      items {` + benefitFields + `
      }
    }
  }
}`

const benefitsGeneratedDoc = `
query BenefitsGenerated` + listVarsDecl + ` {
  benefitsGenerated` + listArgs + ` {
    __typename` + errorVariants + `
    ... on BenefitGeneratedPagination {` + pageHeader + `
      items {` + benefitFields + `
        stockUsed
        startDate
        endDate
      }
    }
  }
}`

const benefitsTicketsDoc = `
query BenefitsTickets` + listVarsDecl + ` {
  benefitsTickets` + listArgs + ` {
    __typename` + errorVariants + `
    ... on BenefitTicketPagination {` + pageHeader + `
      items {
        id
        customer {
          id
          name
          lastName
          phoneNumber
        }
        benefitGenerated {
          id
          name
          type
        }
        startDate
        endDate
        redeemed
        createdAt
      }
    }
  }
}`

const accumulationsDoc = `
query Accumulations` + listVarsDecl + ` {
  accumulations` + listArgs + ` {
    __typename` + errorVariants + `
    ... on AccumulationPagination {` + pageHeader + `
      items {
        id
        margin
        marginType
        points
        amount
        generatedPoints
        gasPrice
        usedPoints
        isActive
        customer {
          id
          name
          lastName
          phoneNumber
        }
        product {
          id
          name
        }
        gasStation {
          id
          name
        }
        createdAt
      }
    }
  }
}`

const reportDoc = `
query AccumulationsReport($nextCursor: String, $prevCursor: String) {
  accumulationsReport(pagination: {limit: ` + pageLimit + `, nextCursor: $nextCursor, prevCursor: $prevCursor}) {
    __typename` + errorVariants + `
    ... on AccumulationReportPagination {` + pageHeader + `
      items {
        id
        totalAmount
        avgAmount
        totalPoints
        totalTransactions
        totalGeneratedPoints
        totalUsedPoints
        customer {
          id
          name
          lastName
          phoneNumber
        }
      }
    }
  }
}`

const getUserByIDDoc = `
query GetUserById($id: String!) {
  getUserById(id: $id) {
    __typename
    ... on User {
      id
      firstName
      lastName
      email
      isActive
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const getProductByIDDoc = `
query GetProductById($id: String!) {
  getProductById(id: $id) {
    __typename
    ... on Product {
      id
      name
      codename
      isActive
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const getMarginByIDDoc = `
query GetGasStationMarginById($id: String!) {
  getGasStationMarginById(id: $id) {
    __typename
    ... on GasStationMargin {
      id
      marginType
      margin
      points
      product {
        id
        name
      }
      gasStation {
        id
        name
      }
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const getLevelByIDDoc = `
query GetLevelById($id: String!) {
  getLevelById(id: $id) {
    __typename
    ... on Level {
      id
      name
      minPoints
      isActive
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const getBenefitByIDDoc = `
query GetBenefitById($id: String!) {
  getBenefitById(id: $id) {
    __typename
    ... on Benefit {` + benefitFields + `
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const getBenefitGeneratedByIDDoc = `
query GetBenefitGeneratedById($id: String!) {
  getBenefitGeneratedById(id: $id) {
    __typename
    ... on BenefitGenerated {` + benefitFields + `
      stockUsed
      startDate
      endDate
    }
    ... on GeneralError {
      code
      message
    }
  }
}`

const addProductDoc = `
mutation AddProduct($input: AddProductBody!) {
  addProduct(data: $input) {
    __typename` + errorVariants + `
    ... on Product {
      id
      name
      codename
      isActive
    }
  }
}`

const updateProductDoc = `
mutation UpdateProduct($id: String!, $input: UpdateProductBody!) {
  updateProduct(id: $id, data: $input) {
    __typename` + errorVariants + `
    ... on Product {
      id
      name
      codename
      isActive
    }
  }
}`

const addUserDoc = `
mutation AddUser($input: AddUserBody!) {
  addUser(data: $input) {
    __typename` + errorVariants + `
    ... on User {
      id
      firstName
      lastName
      email
      isActive
    }
  }
}`

const updateUserDoc = `
mutation UpdateUser($id: String!, $input: UpdateUserBody!) {
  updateUser(id: $id, body: $input) {
    __typename` + errorVariants + `
    ... on User {
      id
      firstName
      lastName
      email
      isActive
    }
  }
}`

const addLevelDoc = `
mutation AddLevel($input: AddlevelBody!) {
  addLevel(body: $input) {
    __typename` + errorVariants + `
    ... on Level {
      id
      name
      minPoints
      isActive
    }
  }
}`

const updateLevelDoc = `
mutation UpdateLevel($id: String!, $input: UpdateLevelBody!) {
  updateLevel(id: $id, body: $input) {
    __typename` + errorVariants + `
    ... on Level {
      id
      name
      minPoints
      isActive
    }
  }
}`

const addMarginDoc = `
mutation AddMargin($input: AddGasStationMargin!) {
  addGasStationMargin(data: $input) {
    __typename` + errorVariants + `
    ... on GasStationMargin {
      id
      marginType
      margin
      points
      product {
        id
      }
      gasStation {
        id
      }
    }
  }
}`

const updateMarginDoc = `
mutation UpdateMargin($id: String!, $input: UpdateGasStationMargin!) {
  updateGasStationMargin(id: $id, data: $input) {
    __typename` + errorVariants + `
    ... on GasStationMargin {
      id
      marginType
      margin
      points
      product {
        id
      }
      gasStation {
        id
      }
    }
  }
}`

const addBenefitDoc = `
mutation AddBenefit($input: AddBenefit!) {
  addBenefit(body: $input) {
    __typename` + errorVariants + `
    ... on Benefit {` + benefitFields + `
    }
  }
}`

const updateBenefitDoc = `
mutation UpdateBenefit($id: String!, $input: UpdateBenefit!) {
  updateBenefit(id: $id, body: $input) {
    __typename` + errorVariants + `
    ... on Benefit {` + benefitFields + `
    }
  }
}`

const updateGeneratedBenefitDoc = `
mutation UpdateBenefitGenerated($id: String!, $input: UpdateGeneratedBenefit!) {
  updateGeneratedBenefit(id: $id, body: $input) {
    __typename` + errorVariants + `
    ... on BenefitGenerated {` + benefitFields + `
      stockUsed
      startDate
      endDate
    }
  }
}`
